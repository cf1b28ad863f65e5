package validate

// Kind classifies validation failures.
type Kind string

const (
	KindRequiredMissing  Kind = "required_missing"
	KindPatternMismatch  Kind = "pattern_mismatch"
	KindOutOfRange       Kind = "out_of_range"
	KindNotNumeric       Kind = "not_numeric"
	KindLengthOutOfRange Kind = "length_out_of_range"
)

// Failure records one violated rule. Message is the rule's configured
// error_message verbatim, or a generic per-rule-type message when the rule
// carries none.
type Failure struct {
	Kind     Kind
	RuleType string
	Message  string
}

// genericMessages substitute for rules configured without an error message.
var genericMessages = map[Kind]string{
	KindRequiredMissing:  "value is required",
	KindPatternMismatch:  "value does not match the required pattern",
	KindOutOfRange:       "value is out of range",
	KindNotNumeric:       "value must be numeric",
	KindLengthOutOfRange: "value length is out of range",
}

func newFailure(kind Kind, ruleType, message string) Failure {
	if message == "" {
		message = genericMessages[kind]
	}
	return Failure{Kind: kind, RuleType: ruleType, Message: message}
}
