// Package formfill fills government tax forms from declarative annotations.
// An annotation document describes where each field sits on the page and how
// its value is formatted and validated; a data tree supplies the values. The
// root package re-exports the common types and offers one-call entry points;
// the pkg/ packages expose each stage for callers that need finer control.
package formfill

import (
	"context"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/datatree"
	"github.com/goliatone/go-formfill/pkg/layout"
	"github.com/goliatone/go-formfill/pkg/pipeline"
)

// Document is the parsed annotation document; alias exported via the root
// package for convenience.
type Document = annotation.Document

// Field describes one positioned form field.
type Field = annotation.Field

// Source supplies raw annotation bytes from a file, fs.FS, or memory.
type Source = annotation.Source

// Value is one node of the immutable data tree.
type Value = datatree.Value

// Instruction is one resolved render instruction.
type Instruction = layout.Instruction

// Result carries the instructions and field errors of one render pass.
type Result = pipeline.Result

// FieldError is one field-scoped failure from a render pass.
type FieldError = pipeline.FieldError

// SourceFromFile reads the annotation document from a filesystem path.
func SourceFromFile(path string) Source {
	return annotation.SourceFromFile(path)
}

// SourceFromBytes wraps in-memory annotation bytes. The name's extension
// selects the decoder (.yaml/.yml for YAML, anything else JSON).
func SourceFromBytes(name string, data []byte) Source {
	return annotation.SourceFromBytes(name, data)
}

// FromGo converts decoded JSON/YAML (maps, slices, scalars) into a data tree.
func FromGo(value any) Value {
	return datatree.FromGo(value)
}

// NewPipeline exposes the pipeline constructor from the top-level module.
func NewPipeline(options ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// Render loads the annotation document from the source and runs one render
// pass against the data tree. It is the simplest entry point for callers that
// just want instructions out.
func Render(ctx context.Context, source Source, data Value, options ...pipeline.Option) (Result, error) {
	doc, err := annotation.NewLoader().Load(ctx, source)
	if err != nil {
		return Result{}, err
	}
	return pipeline.New(options...).Render(ctx, doc, data)
}

// RenderDocument runs one render pass using a pre-loaded document, bypassing
// the loader stage. The document must already be normalized.
func RenderDocument(ctx context.Context, doc Document, data Value, options ...pipeline.Option) (Result, error) {
	return pipeline.New(options...).Render(ctx, doc, data)
}
