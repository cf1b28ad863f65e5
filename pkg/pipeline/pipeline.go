package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/datatree"
	"github.com/goliatone/go-formfill/pkg/format"
	"github.com/goliatone/go-formfill/pkg/layout"
	"github.com/goliatone/go-formfill/pkg/validate"
)

// ErrStrictMode is wrapped by the error Render returns when strict mode
// aborts on the first failed field.
var ErrStrictMode = errors.New("pipeline: field failed in strict mode")

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithFormats injects a format registry. Defaults to the built-in handlers.
func WithFormats(registry *format.Registry) Option {
	return func(p *Pipeline) {
		if registry != nil {
			p.formats = registry
		}
	}
}

// WithValidators injects a validation registry. Defaults to the built-in
// rule types.
func WithValidators(registry *validate.Registry) Option {
	return func(p *Pipeline) {
		if registry != nil {
			p.validators = registry
		}
	}
}

// WithResolver injects a layout resolver, typically to supply real font
// metrics or an ellipsis marker.
func WithResolver(resolver *layout.Resolver) Option {
	return func(p *Pipeline) {
		if resolver != nil {
			p.resolver = resolver
		}
	}
}

// WithStrict aborts the pass at the first field that records any error.
// Partial failure is the default; strict mode is explicit opt-in.
func WithStrict() Option {
	return func(p *Pipeline) {
		p.strict = true
	}
}

// Pipeline orchestrates the resolve → format → validate → layout sequence.
// It is stateless across fields and safe for concurrent Render calls.
type Pipeline struct {
	formats    *format.Registry
	validators *validate.Registry
	resolver   *layout.Resolver
	strict     bool
}

// New constructs a Pipeline applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.formats == nil {
		p.formats = format.Default()
	}
	if p.validators == nil {
		p.validators = validate.Default()
	}
	if p.resolver == nil {
		p.resolver = layout.NewResolver()
	}
	return p
}

// ValidateDocument reports every configuration defect in the document,
// including format and rule types the configured registries do not know.
// Render runs it before touching any field.
func (p *Pipeline) ValidateDocument(doc annotation.Document) []annotation.Issue {
	issues := doc.Validate()
	for _, field := range doc.Fields {
		// An empty format type falls back to plain, so only named types are
		// checked against the registry.
		if field.Formatting != nil && field.Formatting.FormatType != "" && !p.formats.Has(field.Formatting.FormatType) {
			issues = append(issues, annotation.Issue{
				FieldID: field.FieldID,
				Message: fmt.Sprintf("unknown format type %q", field.Formatting.FormatType),
			})
		}
		for _, rule := range field.Validation {
			if !p.validators.Has(rule.RuleType) {
				issues = append(issues, annotation.Issue{
					FieldID: field.FieldID,
					Message: fmt.Sprintf("unknown validation rule type %q", rule.RuleType),
				})
			}
		}
	}
	return issues
}

// Render executes one pass over the document against the data tree. The
// document must already be normalized (loaders do this). Configuration
// defects surface as a *annotation.ValidationIssuesError before any field is
// processed; field-scoped failures are collected in the result instead of
// aborting, unless strict mode is on.
func (p *Pipeline) Render(ctx context.Context, doc annotation.Document, data datatree.Value) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("pipeline: context is required")
	}
	if issues := p.ValidateDocument(doc); len(issues) > 0 {
		return Result{}, &annotation.ValidationIssuesError{Issues: issues}
	}

	var result Result
	for _, field := range doc.Fields {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fieldErrs, inst, ok := p.renderField(field, doc.PageSize(field.PageNumber), data)
		result.Errors = append(result.Errors, fieldErrs...)
		if ok {
			result.Instructions = append(result.Instructions, inst)
		}

		if p.strict && len(fieldErrs) > 0 {
			return result, fmt.Errorf("%w: %s: %s", ErrStrictMode, field.FieldID, fieldErrs[0].Message)
		}
	}
	return result, nil
}

// renderField runs the four stages for one field. ok reports whether a
// render instruction was produced; fieldErrs carries everything that went
// wrong regardless.
func (p *Pipeline) renderField(field annotation.Field, page annotation.Dimensions, data datatree.Value) (fieldErrs []FieldError, inst layout.Instruction, ok bool) {
	// Resolve. Paths were validated with the document, so a parse failure
	// cannot reach this point; resolution itself never fails past its
	// boundary, it yields the configured default.
	path, err := datatree.ParsePath(field.ValueReference.Path)
	if err != nil {
		fieldErrs = append(fieldErrs, fieldError(field.FieldID, string(datatree.ErrMalformedPath), err))
		return fieldErrs, layout.Instruction{}, false
	}
	def := datatree.FromGo(field.ValueReference.DefaultValue)
	raw := datatree.Resolve(data, path, def)

	// Format.
	display, err := p.formatValue(field, raw)
	if err != nil {
		kind := string(format.ErrUnknownFormatType)
		var formatErr *format.Error
		if errors.As(err, &formatErr) {
			kind = string(formatErr.Kind)
		}
		fieldErrs = append(fieldErrs, fieldError(field.FieldID, kind, err))
		return fieldErrs, layout.Instruction{}, false
	}

	// Validate. The field-level required flag is honored independently of
	// any explicit required rule; both report when both are configured.
	if field.Required && validate.IsMissing(raw) {
		failure := validate.MissingFailure("")
		fieldErrs = append(fieldErrs, FieldError{FieldID: field.FieldID, Kind: string(failure.Kind), Message: failure.Message})
	}
	failures, err := p.validators.Apply(
		validate.Input{Raw: raw, Formatted: display},
		rulesOf(field),
	)
	if err != nil {
		fieldErrs = append(fieldErrs, fieldError(field.FieldID, "invalid_rule", err))
		return fieldErrs, layout.Instruction{}, false
	}
	for _, failure := range failures {
		fieldErrs = append(fieldErrs, FieldError{FieldID: field.FieldID, Kind: string(failure.Kind), Message: failure.Message})
	}

	// Layout. Validation failures do not suppress layout; callers may still
	// want to draw the field with an inline error indicator.
	inst, err = p.resolver.Layout(field, page, display)
	if err != nil {
		kind := string(layout.ErrUnsupported)
		var layoutErr *layout.Error
		if errors.As(err, &layoutErr) {
			kind = string(layoutErr.Kind)
		}
		fieldErrs = append(fieldErrs, fieldError(field.FieldID, kind, err))
		return fieldErrs, layout.Instruction{}, false
	}
	return fieldErrs, inst, true
}

func (p *Pipeline) formatValue(field annotation.Field, raw datatree.Value) (string, error) {
	if field.Formatting == nil {
		return p.formats.Format(raw, "", nil)
	}
	return p.formats.Format(raw, field.Formatting.FormatType, format.Params(field.Formatting.Parameters))
}

func rulesOf(field annotation.Field) []validate.Rule {
	if len(field.Validation) == 0 {
		return nil
	}
	rules := make([]validate.Rule, len(field.Validation))
	for i, rule := range field.Validation {
		rules[i] = validate.Rule{
			Type:         rule.RuleType,
			Params:       validate.Params(rule.Parameters),
			ErrorMessage: rule.ErrorMessage,
		}
	}
	return rules
}

func fieldError(fieldID, kind string, err error) FieldError {
	return FieldError{FieldID: fieldID, Kind: kind, Message: err.Error()}
}
