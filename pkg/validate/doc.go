// Package validate checks resolved and formatted field values against
// declarative rules.
//
// Each rule type (required, regex, range, length) is a Validator registered
// by name, mirroring the format registry so new rule types can be added
// without touching dispatch. Rules are pure observers: they never mutate the
// value, every rule on a field runs (no short-circuit), and all failures are
// collected in rule order so a caller sees every violation at once.
package validate
