package datatree

import "fmt"

// PathErrorKind classifies path failures.
type PathErrorKind string

const (
	// ErrMissingKey marks a segment whose identifier is absent from the
	// current mapping, or whose parent is not a mapping at all.
	ErrMissingKey PathErrorKind = "missing_key"
	// ErrIndexOutOfRange marks a bracketed index outside the sequence bounds.
	ErrIndexOutOfRange PathErrorKind = "index_out_of_range"
	// ErrNotIndexable marks a bracketed index applied to a non-sequence.
	ErrNotIndexable PathErrorKind = "not_indexable"
	// ErrMalformedPath marks a path that violates the grammar. Unlike the
	// data-dependent kinds it is a configuration defect and surfaces at
	// document-validation time rather than defaulting.
	ErrMalformedPath PathErrorKind = "malformed_path"
)

// PathError describes why a path could not be parsed or followed.
type PathError struct {
	Kind    PathErrorKind
	Path    string
	Segment string
	Detail  string
}

func (e *PathError) Error() string {
	msg := fmt.Sprintf("datatree: %s in path %q", e.Kind, e.Path)
	if e.Segment != "" {
		msg += fmt.Sprintf(" at segment %q", e.Segment)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
