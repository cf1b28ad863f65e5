// Package annotation models the declarative documents that describe where and
// how taxpayer data appears on a fixed-layout form page.
//
// A Document is loaded once (JSON or YAML), checked against an embedded JSON
// Schema, normalized with the documented defaults, and then validated for
// configuration defects (duplicate field ids, malformed value-reference
// paths, unsupported overflow policies). Documents are immutable for the
// duration of a render pass.
package annotation
