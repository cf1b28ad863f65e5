// Package testsupport provides fixture loading and golden-file helpers shared
// by the package test suites. Testing helpers fail the test on error to keep
// contract tests concise; the non-T variants suit setup code outside tests.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/datatree"
)

// LoadDocument reads an annotation fixture (JSON or YAML by extension) into a
// normalized, validated document.
func LoadDocument(t *testing.T, path string) annotation.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (annotation.Document, error) {
	if path == "" {
		return annotation.Document{}, errors.New("testsupport: document path is required")
	}
	return annotation.NewLoader().Load(context.Background(), annotation.SourceFromFile(path))
}

// MustLoadDataTree reads a JSON fixture into an immutable data tree.
func MustLoadDataTree(t *testing.T, path string) datatree.Value {
	t.Helper()

	tree, err := LoadDataTree(path)
	if err != nil {
		t.Fatalf("load data tree: %v", err)
	}
	return tree
}

// LoadDataTree reads a JSON fixture into a data tree, returning an error for
// callers managing setup outside of *testing.T.
func LoadDataTree(path string) (datatree.Value, error) {
	if path == "" {
		return datatree.Null(), errors.New("testsupport: data tree path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return datatree.Null(), fmt.Errorf("testsupport: read data tree: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return datatree.Null(), fmt.Errorf("testsupport: unmarshal data tree: %w", err)
	}
	return datatree.FromGo(decoded), nil
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeGoldenBytes(t, path, payload)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeGoldenBytes(t, path, data)
	return true
}

func writeGoldenBytes(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
