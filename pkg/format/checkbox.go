package format

import (
	"strings"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Checkbox coerces the value to a boolean and emits one of two symbols.
// Truthy values: boolean true, non-zero numbers, and non-empty strings other
// than "false" and "0" (case-insensitive).
//
// Parameters: checked_symbol (default "X"), unchecked_symbol (default "").
type Checkbox struct{}

// Name implements Formatter.
func (Checkbox) Name() string { return TypeCheckbox }

// Format implements Formatter.
func (Checkbox) Format(value datatree.Value, params Params) (string, error) {
	if isTruthy(value) {
		return params.String("checked_symbol", "X"), nil
	}
	return params.String("unchecked_symbol", ""), nil
}

func isTruthy(value datatree.Value) bool {
	switch value.Kind() {
	case datatree.KindBool:
		b, _ := value.AsBool()
		return b
	case datatree.KindNumber:
		n, _ := value.AsNumber()
		return n != 0
	case datatree.KindString:
		s, _ := value.AsString()
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return false
		}
		switch strings.ToLower(trimmed) {
		case "false", "0":
			return false
		}
		return true
	default:
		return false
	}
}
