package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Rule type names for the built-in validators.
const (
	TypeRequired = "required"
	TypeRegex    = "regex"
	TypeRange    = "range"
	TypeLength   = "length"
)

// Required fails when the raw value is null or an empty string. It inspects
// the raw value, not the formatted one, so an unchecked checkbox (which
// formats to "") does not trip it.
type Required struct{}

// Name implements Validator.
func (Required) Name() string { return TypeRequired }

// Validate implements Validator.
func (Required) Validate(input Input, rule Rule) ([]Failure, error) {
	if IsMissing(input.Raw) {
		return []Failure{newFailure(KindRequiredMissing, TypeRequired, rule.ErrorMessage)}, nil
	}
	return nil, nil
}

// IsMissing reports whether a raw value counts as absent for required checks:
// null, or a string that is empty after trimming.
func IsMissing(value datatree.Value) bool {
	if value.IsNull() {
		return true
	}
	if s, ok := value.AsString(); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// MissingFailure builds the failure reported when a field-level required flag
// (as opposed to an explicit required rule) finds no value.
func MissingFailure(message string) Failure {
	return newFailure(KindRequiredMissing, TypeRequired, message)
}

// Regex fails when the formatted value does not fully match the configured
// pattern. Partial matches are not accepted: the pattern is anchored at both
// ends before compiling.
//
// Parameters: pattern (required).
type Regex struct{}

// Name implements Validator.
func (Regex) Name() string { return TypeRegex }

// Validate implements Validator.
func (Regex) Validate(input Input, rule Rule) ([]Failure, error) {
	pattern := rule.Params.String("pattern", "")
	if pattern == "" {
		return nil, fmt.Errorf("pattern parameter is required")
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	if !re.MatchString(input.Formatted) {
		return []Failure{newFailure(KindPatternMismatch, TypeRegex, rule.ErrorMessage)}, nil
	}
	return nil, nil
}

// Range coerces the raw value to a number and fails when it lies outside the
// inclusive [min, max] interval. A value that cannot coerce is reported as
// not_numeric, distinct from out_of_range. Either bound may be omitted.
//
// Parameters: min (optional), max (optional).
type Range struct{}

// Name implements Validator.
func (Range) Name() string { return TypeRange }

// Validate implements Validator.
func (Range) Validate(input Input, rule Rule) ([]Failure, error) {
	number, ok := input.Raw.AsNumber()
	if !ok {
		return []Failure{newFailure(KindNotNumeric, TypeRange, rule.ErrorMessage)}, nil
	}

	if min, has := rule.Params.Float("min"); has && number < min {
		return []Failure{newFailure(KindOutOfRange, TypeRange, rule.ErrorMessage)}, nil
	}
	if max, has := rule.Params.Float("max"); has && number > max {
		return []Failure{newFailure(KindOutOfRange, TypeRange, rule.ErrorMessage)}, nil
	}
	return nil, nil
}

// Length fails when the character count of the formatted value lies outside
// [min_length, max_length]. Either bound may be omitted, meaning unbounded on
// that side. Counts are rune-based.
//
// Parameters: min_length (optional), max_length (optional).
type Length struct{}

// Name implements Validator.
func (Length) Name() string { return TypeLength }

// Validate implements Validator.
func (Length) Validate(input Input, rule Rule) ([]Failure, error) {
	count := float64(len([]rune(input.Formatted)))

	if min, has := rule.Params.Float("min_length"); has && count < min {
		return []Failure{newFailure(KindLengthOutOfRange, TypeLength, rule.ErrorMessage)}, nil
	}
	if max, has := rule.Params.Float("max_length"); has && count > max {
		return []Failure{newFailure(KindLengthOutOfRange, TypeLength, rule.ErrorMessage)}, nil
	}
	return nil, nil
}
