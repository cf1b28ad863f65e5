package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Currency renders monetary amounts: fixed-point decimals, thousands
// grouping, a currency symbol prefix, and configurable negative styling.
//
// Parameters: decimal_places (default 2), show_cents (default true; false
// drops the fractional part entirely), thousands_separator (default ","),
// currency_symbol (default "$"), negative_format ∈ parentheses|minus|none
// (default parentheses).
//
// Rounding is round-half-to-even over the binary value of the input, as
// performed by strconv.FormatFloat.
type Currency struct{}

// Name implements Formatter.
func (Currency) Name() string { return TypeCurrency }

// Format implements Formatter.
func (Currency) Format(value datatree.Value, params Params) (string, error) {
	amount, ok := value.AsNumber()
	if !ok {
		return "", &Error{Kind: ErrInvalidNumber, FormatType: TypeCurrency, Detail: "value " + strconv.Quote(value.Text()) + " is not numeric"}
	}

	places := params.Int("decimal_places", 2)
	if places < 0 {
		places = 0
	}
	if !params.Bool("show_cents", true) {
		places = 0
	}
	separator := params.String("thousands_separator", ",")
	symbol := params.String("currency_symbol", "$")
	negative := params.String("negative_format", "parentheses")

	isNegative := amount < 0
	fixed := strconv.FormatFloat(math.Abs(amount), 'f', places, 64)

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	formatted := groupThousands(intPart, separator)
	if hasFrac {
		formatted += "." + fracPart
	}
	formatted = symbol + formatted

	if isNegative {
		switch negative {
		case "parentheses":
			formatted = "(" + formatted + ")"
		case "none":
		default:
			formatted = "-" + formatted
		}
	}
	return formatted, nil
}

// groupThousands inserts sep every three digits from the right.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
