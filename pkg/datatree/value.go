package datatree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind enumerates the variants a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an immutable tagged union over the JSON-compatible shapes a data
// tree may contain. The zero value is Null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool wraps a boolean.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Number wraps a float64.
func Number(v float64) Value {
	return Value{kind: KindNumber, n: v}
}

// String wraps a string.
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// Sequence wraps an ordered list of values.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Mapping wraps a key/value mapping.
func Mapping(entries map[string]Value) Value {
	return Value{kind: KindMapping, m: entries}
}

// FromGo converts a decoded JSON/YAML value (as produced by encoding/json or
// yaml.v3 into any) to a Value. Unsupported shapes become their string form.
func FromGo(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case string:
		return String(t)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromGo(item)
		}
		return Sequence(items...)
	case map[string]any:
		entries := make(map[string]Value, len(t))
		for key, item := range t {
			entries[key] = FromGo(item)
		}
		return Mapping(entries)
	case map[any]any:
		// yaml.v3 decodes mappings with non-string keys this way.
		entries := make(map[string]Value, len(t))
		for key, item := range t {
			entries[fmt.Sprint(key)] = FromGo(item)
		}
		return Mapping(entries)
	default:
		return String(fmt.Sprint(t))
	}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload. ok is false for non-bool values.
func (v Value) AsBool() (value, ok bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the numeric payload. Strings that parse as numbers coerce;
// ok is false otherwise.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.n, true
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// AsString returns the string payload. ok is false for non-string values.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsSequence returns the sequence payload. ok is false for non-sequences.
func (v Value) AsSequence() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.seq, true
}

// AsMapping returns the mapping payload. ok is false for non-mappings.
func (v Value) AsMapping() (map[string]Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.m, true
}

// Index returns the i-th element of a sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Null(), false
	}
	return v.seq[i], true
}

// Key looks up a mapping entry.
func (v Value) Key(name string) (Value, bool) {
	if v.kind != KindMapping {
		return Null(), false
	}
	entry, ok := v.m[name]
	return entry, ok
}

// Text renders the value the way a plain field would display it: null is
// empty, numbers drop a trailing ".0" for integral values, sequences and
// mappings use a compact deterministic notation.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.Text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		keys := make([]string, 0, len(v.m))
		for key := range v.m {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + ": " + v.m[key].Text()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// Equal reports deep equality. go-cmp uses this method, so Values can appear
// inside compared structures without an exporter.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.m) != len(other.m) {
			return false
		}
		for key, item := range v.m {
			peer, ok := other.m[key]
			if !ok || !item.Equal(peer) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface converts the value back to the plain Go form encoding/json
// produces, which keeps canvas payloads and test fixtures symmetrical.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindSequence:
		items := make([]any, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Interface()
		}
		return items
	case KindMapping:
		entries := make(map[string]any, len(v.m))
		for key, item := range v.m {
			entries[key] = item.Interface()
		}
		return entries
	default:
		return nil
	}
}
