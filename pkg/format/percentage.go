package format

import (
	"strconv"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Percentage renders a numeric value as a percentage string.
//
// Parameters: multiply_by_100 (default true; set false when the raw value is
// already expressed in percent rather than as a fraction), decimal_places
// (default 2), show_symbol (default true).
type Percentage struct{}

// Name implements Formatter.
func (Percentage) Name() string { return TypePercentage }

// Format implements Formatter.
func (Percentage) Format(value datatree.Value, params Params) (string, error) {
	amount, ok := value.AsNumber()
	if !ok {
		return "", &Error{Kind: ErrInvalidNumber, FormatType: TypePercentage, Detail: "value " + strconv.Quote(value.Text()) + " is not numeric"}
	}

	if params.Bool("multiply_by_100", true) {
		amount *= 100
	}
	places := params.Int("decimal_places", 2)
	if places < 0 {
		places = 0
	}

	formatted := strconv.FormatFloat(amount, 'f', places, 64)
	if params.Bool("show_symbol", true) {
		formatted += "%"
	}
	return formatted, nil
}
