package format

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Mask emits a literal pattern where each '#' or 'X' placeholder consumes one
// digit of the raw value, left to right, and every other pattern character is
// copied verbatim. Non-digit characters in the raw value are ignored, so
// "123-45-6789" and "123456789" mask identically.
//
// Parameters: pattern (e.g. "XXX-XX-####" for an SSN, "##-#######" for an EIN).
type Mask struct{}

// Name implements Formatter.
func (Mask) Name() string { return TypeMask }

// Format implements Formatter.
func (Mask) Format(value datatree.Value, params Params) (string, error) {
	pattern := params.String("pattern", "")
	digits := extractDigits(value.Text())

	var b strings.Builder
	consumed := 0
	for _, char := range pattern {
		if char == '#' || char == 'X' {
			if consumed >= len(digits) {
				return "", &Error{
					Kind:       ErrInsufficientDigits,
					FormatType: TypeMask,
					Detail:     fmt.Sprintf("pattern %q needs more digits than value provides (%d)", pattern, len(digits)),
				}
			}
			b.WriteByte(digits[consumed])
			consumed++
			continue
		}
		b.WriteRune(char)
	}
	return b.String(), nil
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, char := range s {
		if char >= '0' && char <= '9' {
			b.WriteRune(char)
		}
	}
	return b.String()
}
