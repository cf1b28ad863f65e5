package format

import "fmt"

// ErrorKind classifies formatting failures.
type ErrorKind string

const (
	// ErrInvalidNumber marks a value that should coerce to a number but does not.
	ErrInvalidNumber ErrorKind = "invalid_number"
	// ErrInsufficientDigits marks a mask with more placeholders than the value has digits.
	ErrInsufficientDigits ErrorKind = "insufficient_digits"
	// ErrInvalidDate marks a value that does not parse under the configured input format.
	ErrInvalidDate ErrorKind = "invalid_date"
	// ErrUnknownFormatType marks a rule naming a format type with no registered handler.
	ErrUnknownFormatType ErrorKind = "unknown_format_type"
)

// Error is a field-scoped formatting failure. The pipeline collects these per
// field rather than raising them.
type Error struct {
	Kind       ErrorKind
	FormatType string
	Detail     string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("format: %s", e.Kind)
	if e.FormatType != "" {
		msg += fmt.Sprintf(" (%s)", e.FormatType)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
