package pipeline

import "github.com/goliatone/go-formfill/pkg/layout"

// FieldError is one field-scoped failure: a formatting error, a violated
// validation rule, or an overflow under the "error" policy.
type FieldError struct {
	FieldID string `json:"field_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Result is the outcome of one render pass: the ordered render instructions
// for every field that laid out, and the ordered field errors. Both preserve
// document order; a field can contribute to both sides at once.
type Result struct {
	Instructions []layout.Instruction `json:"instructions"`
	Errors       []FieldError         `json:"errors,omitempty"`
}

// OK reports whether the pass completed without any field errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// ErrorsFor returns the errors recorded for one field, in evaluation order.
func (r Result) ErrorsFor(fieldID string) []FieldError {
	var out []FieldError
	for _, fieldErr := range r.Errors {
		if fieldErr.FieldID == fieldID {
			out = append(out, fieldErr)
		}
	}
	return out
}

// InstructionFor returns the render instruction for one field, if it laid out.
func (r Result) InstructionFor(fieldID string) (layout.Instruction, bool) {
	for _, inst := range r.Instructions {
		if inst.FieldID == fieldID {
			return inst, true
		}
	}
	return layout.Instruction{}, false
}
