package annotation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed annotation.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("annotation.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("annotation: add embedded schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("annotation.schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("annotation: compile embedded schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateShape checks a decoded document payload against the embedded JSON
// Schema. Schema violations are reported as Issues with JSON pointer paths.
func ValidateShape(payload any) []Issue {
	schema, err := documentSchema()
	if err != nil {
		return []Issue{{Message: err.Error()}}
	}

	err = schema.Validate(payload)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []Issue{{Message: err.Error()}}
	}
	return issuesFromSchemaError(validationErr)
}

func issuesFromSchemaError(err *jsonschema.ValidationError) []Issue {
	// Leaf causes carry the actionable messages; the root error just says
	// "doesn't validate".
	if len(err.Causes) == 0 {
		return []Issue{{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		}}
	}
	var issues []Issue
	for _, cause := range err.Causes {
		issues = append(issues, issuesFromSchemaError(cause)...)
	}
	return issues
}

func pointerToPath(pointer string) string {
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return ""
	}
	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		segment = strings.ReplaceAll(segment, "~1", "/")
		segments[i] = strings.ReplaceAll(segment, "~0", "~")
	}
	return strings.Join(segments, ".")
}
