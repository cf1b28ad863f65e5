// Package pipeline drives the per-field resolve → format → validate → layout
// sequence over an annotation document and a data tree.
//
// Fields are independent of one another: the pipeline processes them in
// document order with no shared mutable state, collecting render instructions
// and field-scoped errors side by side. Partial failure is the default: a
// field whose validation fails is still laid out so callers can render form
// state with inline error indicators. A strict mode that aborts on the first
// failed field is explicit opt-in. Cancellation is cooperative at field
// granularity.
package pipeline
