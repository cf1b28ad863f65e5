package layout

import "fmt"

// ErrorKind classifies layout failures.
type ErrorKind string

const (
	// ErrOverflow marks text wider than its padded box under the "error"
	// overflow policy. Field-scoped: collected, not raised.
	ErrOverflow ErrorKind = "overflow"
	// ErrUnsupported marks a declared-but-unimplemented policy such as
	// "wrap". It is a configuration defect, handled like a malformed path.
	ErrUnsupported ErrorKind = "unsupported"
)

// Error describes why a field could not be laid out.
type Error struct {
	Kind    ErrorKind
	FieldID string
	Detail  string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("layout: %s", e.Kind)
	if e.FieldID != "" {
		msg += fmt.Sprintf(" for field %q", e.FieldID)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
