package validate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Params carries the rule-type specific parameters of a validation rule.
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

// Float returns the named parameter as a float64 and whether it was present.
func (p Params) Float(key string) (float64, bool) {
	switch t := p[key].(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}

// Input bundles the two views of a field value a rule may inspect: the raw
// resolved value and the formatted display string.
type Input struct {
	Raw       datatree.Value
	Formatted string
}

// Rule is one declarative validation constraint on a field.
type Rule struct {
	Type         string
	Params       Params
	ErrorMessage string
}

// Validator evaluates one rule type against a field value. A passing rule
// returns no failures; configuration problems (unparseable regex, missing
// parameters) return an error instead.
type Validator interface {
	Name() string
	Validate(input Input, rule Rule) ([]Failure, error)
}

// Registry stores validators by rule type.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[string]Validator),
	}
}

// Default returns a registry preloaded with the built-in rule types.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(Required{})
	r.MustRegister(Regex{})
	r.MustRegister(Range{})
	r.MustRegister(Length{})
	return r
}

// Register adds a validator by its Name(). Duplicate names return an error.
func (r *Registry) Register(v Validator) error {
	if v == nil {
		return fmt.Errorf("validate: validator is required")
	}
	name := v.Name()
	if name == "" {
		return fmt.Errorf("validate: validator name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[name]; exists {
		return fmt.Errorf("validate: validator %q already registered", name)
	}

	r.validators[name] = v
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(v Validator) {
	if err := r.Register(v); err != nil {
		panic(err)
	}
}

// Get retrieves a validator by rule type.
func (r *Registry) Get(name string) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("validate: rule type %q not registered", name)
	}
	return v, nil
}

// List returns a sorted list of registered rule types.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a rule type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.validators[name]
	return ok
}

// Apply runs every rule against the input and collects all failures in rule
// order. Evaluation never short-circuits. An unregistered rule type or a
// misconfigured rule is a configuration error, not a validation failure.
func (r *Registry) Apply(input Input, rules []Rule) ([]Failure, error) {
	var failures []Failure
	for _, rule := range rules {
		validator, err := r.Get(rule.Type)
		if err != nil {
			return nil, err
		}
		found, err := validator.Validate(input, rule)
		if err != nil {
			return nil, fmt.Errorf("validate: rule %q: %w", rule.Type, err)
		}
		failures = append(failures, found...)
	}
	return failures, nil
}
