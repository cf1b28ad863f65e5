package datatree

// Resolve walks a parsed path through the tree. Any data-dependent failure
// (missing key, out-of-range index, indexing a non-sequence) yields the
// supplied default; Resolve never returns an error. Use ParsePath up front to
// reject malformed paths as configuration defects.
func Resolve(tree Value, path Path, def Value) Value {
	value, err := Lookup(tree, path)
	if err != nil {
		return def
	}
	return value
}

// ResolveString parses raw and resolves it in one call, for callers that have
// not pre-validated their paths. Malformed paths return a *PathError; data
// failures still yield the default.
func ResolveString(tree Value, raw string, def Value) (Value, error) {
	path, err := ParsePath(raw)
	if err != nil {
		return Null(), err
	}
	return Resolve(tree, path, def), nil
}

// Lookup walks a parsed path and reports the first failure instead of
// substituting a default. The pipeline uses Resolve; Lookup exists for
// callers that need to distinguish why a reference missed.
func Lookup(tree Value, path Path) (Value, error) {
	current := tree
	for _, segment := range path.segments {
		next, ok := current.Key(segment.Key)
		if !ok {
			return Null(), &PathError{Kind: ErrMissingKey, Path: path.raw, Segment: segment.Key}
		}
		current = next

		for _, index := range segment.Indices {
			if current.Kind() != KindSequence {
				return Null(), &PathError{Kind: ErrNotIndexable, Path: path.raw, Segment: segment.Key}
			}
			item, ok := current.Index(index)
			if !ok {
				return Null(), &PathError{Kind: ErrIndexOutOfRange, Path: path.raw, Segment: segment.Key}
			}
			current = item
		}
	}
	return current, nil
}
