package annotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoaderOption customises loader construction.
type LoaderOption func(*Loader)

// WithFS supplies the fs.FS used to resolve SourceKindFS sources.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// Loader reads annotation documents from files, fs.FS entries, or in-memory
// payloads, in JSON or YAML, and returns fully normalized and validated
// documents.
type Loader struct {
	fsys fs.FS
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads, shape-checks, decodes, normalizes, and validates an annotation
// document. Configuration defects are aggregated into a
// *ValidationIssuesError so callers see every problem at once.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("annotation: source is required")
	}
	select {
	case <-ctx.Done():
		return Document{}, ctx.Err()
	default:
	}

	data, err := l.read(src)
	if err != nil {
		return Document{}, fmt.Errorf("annotation: load %s: %w", src.Location(), err)
	}
	return Decode(src.Location(), data)
}

func (l *Loader) read(src Source) ([]byte, error) {
	switch s := src.(type) {
	case fileSource:
		return os.ReadFile(s.path)
	case fsSource:
		if l.fsys == nil {
			return nil, errors.New("no fs.FS configured, use WithFS")
		}
		return fs.ReadFile(l.fsys, s.name)
	case bytesSource:
		return s.data, nil
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind())
	}
}

// Decode parses an annotation document from raw bytes. The name selects the
// encoding by extension (.yaml/.yml for YAML, JSON otherwise) and labels
// errors.
func Decode(name string, data []byte) (Document, error) {
	isYAML := false
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		isYAML = true
	}

	var payload any
	if isYAML {
		if err := yaml.Unmarshal(data, &payload); err != nil {
			return Document{}, fmt.Errorf("annotation: parse %s: %w", name, err)
		}
		payload = jsonCompatible(payload)
	} else {
		if err := json.Unmarshal(data, &payload); err != nil {
			return Document{}, fmt.Errorf("annotation: parse %s: %w", name, err)
		}
	}

	if issues := ValidateShape(payload); len(issues) > 0 {
		return Document{}, &ValidationIssuesError{Issues: issues}
	}

	var doc Document
	if isYAML {
		// Round-trip through JSON so both encodings share one set of
		// decoding rules (struct tags, integer page keys).
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Document{}, fmt.Errorf("annotation: normalize %s: %w", name, err)
		}
		if err := json.Unmarshal(encoded, &doc); err != nil {
			return Document{}, fmt.Errorf("annotation: decode %s: %w", name, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("annotation: decode %s: %w", name, err)
		}
	}

	doc.Normalize()
	if issues := doc.Validate(); len(issues) > 0 {
		return Document{}, &ValidationIssuesError{Issues: issues}
	}
	return doc, nil
}

// jsonCompatible rewrites yaml.v3 output into the shapes encoding/json
// produces: string-keyed maps all the way down.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, item := range t {
			out[key] = jsonCompatible(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for key, item := range t {
			out[fmt.Sprint(key)] = jsonCompatible(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = jsonCompatible(item)
		}
		return out
	default:
		return v
	}
}
