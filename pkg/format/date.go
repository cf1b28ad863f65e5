package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// Date re-emits a parsed date under a token template using MM, DD and YYYY.
//
// Parameters: input_format (default "ISO8601", i.e. YYYY-MM-DD; any other
// value is itself interpreted as a MM/DD/YYYY token template) and format
// (output template, default "MM/DD/YYYY").
type Date struct{}

// Name implements Formatter.
func (Date) Name() string { return TypeDate }

// Format implements Formatter.
func (Date) Format(value datatree.Value, params Params) (string, error) {
	raw := strings.TrimSpace(value.Text())
	inputFormat := params.String("input_format", "ISO8601")
	outputFormat := params.String("format", "MM/DD/YYYY")

	layout := "2006-01-02"
	if !strings.EqualFold(inputFormat, "ISO8601") {
		layout = tokenLayout(inputFormat)
	}

	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return "", &Error{
			Kind:       ErrInvalidDate,
			FormatType: TypeDate,
			Detail:     "value " + strconv.Quote(raw) + " does not match input format " + strconv.Quote(inputFormat),
		}
	}

	replacer := strings.NewReplacer(
		"YYYY", parsed.Format("2006"),
		"MM", parsed.Format("01"),
		"DD", parsed.Format("02"),
	)
	return replacer.Replace(outputFormat), nil
}

// tokenLayout converts an MM/DD/YYYY style token template into a Go time
// layout.
func tokenLayout(tokens string) string {
	replacer := strings.NewReplacer(
		"YYYY", "2006",
		"MM", "01",
		"DD", "02",
	)
	return replacer.Replace(tokens)
}
