package format

import "github.com/goliatone/go-formfill/pkg/datatree"

// Format type names for the built-in handlers.
const (
	TypePlain      = "plain"
	TypeCurrency   = "currency"
	TypeMask       = "mask"
	TypeDate       = "date"
	TypeCheckbox   = "checkbox"
	TypePercentage = "percentage"
)

// Plain stringifies the value as-is. It is the identity formatting applied
// when a field declares no formatting rule, and it is idempotent: formatting
// an already-formatted string again returns the same string.
type Plain struct{}

// Name implements Formatter.
func (Plain) Name() string { return TypePlain }

// Format implements Formatter.
func (Plain) Format(value datatree.Value, _ Params) (string, error) {
	return value.Text(), nil
}
