package format

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Params carries the format-type specific parameters of a formatting rule.
// Values follow JSON decoding conventions (float64 numbers, bool, string).
type Params map[string]any

// String returns the named parameter as a string, or def when absent.
func (p Params) String(key, def string) string {
	raw, ok := p[key]
	if !ok {
		return def
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

// Int returns the named parameter as an int, or def when absent or untyped.
func (p Params) Int(key string, def int) int {
	switch t := p[key].(type) {
	case int:
		return t
	case float64:
		return int(t)
	default:
		return def
	}
}

// Bool returns the named parameter as a bool, or def when absent or untyped.
func (p Params) Bool(key string, def bool) bool {
	switch t := p[key].(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(t) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return def
}

// Formatter converts a raw value into its display string under one format
// type. Implementations must be pure: same value and params, same output.
type Formatter interface {
	Name() string
	Format(value datatree.Value, params Params) (string, error)
}

// Registry stores formatters by format type, providing discovery and
// duplication safeguards.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Default returns a registry preloaded with the built-in format types.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(Plain{})
	r.MustRegister(Currency{})
	r.MustRegister(Mask{})
	r.MustRegister(Date{})
	r.MustRegister(Checkbox{})
	r.MustRegister(Percentage{})
	return r
}

// Register adds a formatter by its Name(). Duplicate names return an error.
func (r *Registry) Register(f Formatter) error {
	if f == nil {
		return fmt.Errorf("format: formatter is required")
	}
	name := f.Name()
	if name == "" {
		return fmt.Errorf("format: formatter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[name]; exists {
		return fmt.Errorf("format: formatter %q already registered", name)
	}

	r.formatters[name] = f
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(f Formatter) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Get retrieves a formatter by format type.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[name]
	if !ok {
		return nil, &Error{Kind: ErrUnknownFormatType, FormatType: name}
	}
	return f, nil
}

// List returns a sorted list of registered format types.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a format type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.formatters[name]
	return ok
}

// Format dispatches to the handler for formatType. An empty formatType means
// plain stringification.
func (r *Registry) Format(value datatree.Value, formatType string, params Params) (string, error) {
	if formatType == "" {
		formatType = TypePlain
	}
	f, err := r.Get(formatType)
	if err != nil {
		return "", err
	}
	return f.Format(value, params)
}
