// Package datatree models the nested, JSON-compatible data documents that
// field annotations reference, and resolves dotted/bracketed paths against
// them.
//
// Values are a tagged union (Null, Bool, Number, String, Sequence, Mapping)
// with typed accessors so traversal is checked at every step instead of
// relying on runtime shape assertions. Paths follow the grammar
// `segment(.segment)*` where each segment is an identifier optionally
// followed by one or more bracketed indices, e.g. "income.wages[0].amount".
//
// Resolution never fails past its own boundary: a missing key, out-of-range
// index, or non-indexable target yields the caller-supplied default. Only a
// malformed path is an error, and that is a configuration defect reported by
// ParsePath before any data is touched.
package datatree
