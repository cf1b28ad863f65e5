package datatree

import (
	"strconv"
	"strings"
)

// Segment is one dot-separated step of a path: a mapping key followed by zero
// or more sequence indices.
type Segment struct {
	Key     string
	Indices []int
}

// Path is a parsed value-reference path.
type Path struct {
	raw      string
	segments []Segment
}

// String returns the original path text.
func (p Path) String() string {
	return p.raw
}

// Segments exposes the parsed steps.
func (p Path) Segments() []Segment {
	return p.segments
}

// ParsePath validates and parses a value-reference path. Any grammar
// violation returns a *PathError with kind ErrMalformedPath.
func ParsePath(raw string) (Path, error) {
	if strings.TrimSpace(raw) == "" {
		return Path{}, &PathError{Kind: ErrMalformedPath, Path: raw, Detail: "path is empty"}
	}

	parts := strings.Split(raw, ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		segment, err := parseSegment(raw, part)
		if err != nil {
			return Path{}, err
		}
		segments = append(segments, segment)
	}
	return Path{raw: raw, segments: segments}, nil
}

func parseSegment(path, part string) (Segment, error) {
	if part == "" {
		return Segment{}, &PathError{Kind: ErrMalformedPath, Path: path, Detail: "empty segment"}
	}

	open := strings.IndexByte(part, '[')
	if open == -1 {
		if strings.ContainsAny(part, "]") {
			return Segment{}, &PathError{Kind: ErrMalformedPath, Path: path, Segment: part, Detail: "unbalanced brackets"}
		}
		return Segment{Key: part}, nil
	}

	key := part[:open]
	if key == "" {
		return Segment{}, &PathError{Kind: ErrMalformedPath, Path: path, Segment: part, Detail: "index without identifier"}
	}

	segment := Segment{Key: key}
	rest := part[open:]
	for rest != "" {
		if rest[0] != '[' {
			return Segment{}, &PathError{Kind: ErrMalformedPath, Path: path, Segment: part, Detail: "unexpected characters after index"}
		}
		close := strings.IndexByte(rest, ']')
		if close == -1 {
			return Segment{}, &PathError{Kind: ErrMalformedPath, Path: path, Segment: part, Detail: "unbalanced brackets"}
		}
		index, err := strconv.Atoi(rest[1:close])
		if err != nil || index < 0 {
			return Segment{}, &PathError{Kind: ErrMalformedPath, Path: path, Segment: part, Detail: "index must be a non-negative integer"}
		}
		segment.Indices = append(segment.Indices, index)
		rest = rest[close+1:]
	}
	return segment, nil
}
