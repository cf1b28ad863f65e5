package annotation_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfill/pkg/annotation"
)

const sampleJSON = `{
	"version": "1.0.0",
	"metadata": {
		"form_number": "1040",
		"form_name": "U.S. Individual Income Tax Return",
		"tax_year": 2025,
		"page_dimensions": {"1": {"width": 612, "height": 792}}
	},
	"fields": [
		{
			"field_id": "1040_first_name",
			"field_type": "text",
			"position": {"x": 50, "y": 150},
			"dimensions": {"width": 200, "height": 20},
			"value_reference": {"path": "taxpayer.name.first"},
			"required": true
		},
		{
			"field_id": "1040_ssn",
			"field_type": "ssn",
			"position": {"x": 400, "y": 150},
			"dimensions": {"width": 120, "height": 20},
			"value_reference": {"path": "taxpayer.ssn"},
			"character_spacing": 8.5,
			"formatting": {"format_type": "mask", "parameters": {"pattern": "XXX-XX-####"}},
			"page_number": 2
		}
	]
}`

func TestDecode_JSONDocument(t *testing.T) {
	doc, err := annotation.Decode("form_1040.json", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if len(doc.Fields) != 2 {
		t.Fatalf("decoded %d fields, want 2", len(doc.Fields))
	}
	if doc.Metadata.FormNumber != "1040" || doc.Metadata.TaxYear != 2025 {
		t.Fatalf("metadata mismatch: %+v", doc.Metadata)
	}

	want := annotation.Dimensions{Width: 612, Height: 792}
	if diff := cmp.Diff(want, doc.Metadata.PageDimensions[1]); diff != "" {
		t.Fatalf("page dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_AppliesDefaults(t *testing.T) {
	doc, err := annotation.Decode("form_1040.json", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	field, ok := doc.FieldByID("1040_first_name")
	if !ok {
		t.Fatal("field 1040_first_name not found")
	}

	if field.Alignment != annotation.AlignLeft {
		t.Errorf("alignment = %q, want left", field.Alignment)
	}
	if field.Overflow != annotation.OverflowTruncate {
		t.Errorf("overflow = %q, want truncate", field.Overflow)
	}
	if field.Position.CoordinateSystem != annotation.CoordinateAbsolute {
		t.Errorf("coordinate system = %q, want absolute", field.Position.CoordinateSystem)
	}
	if field.FontStyle.FontFamily != "Courier" || field.FontStyle.FontSize != 10 {
		t.Errorf("font style defaults not applied: %+v", field.FontStyle)
	}
	if field.Padding == nil || *field.Padding != (annotation.Padding{Top: 0, Right: 2, Bottom: 0, Left: 2}) {
		t.Errorf("padding default not applied: %+v", field.Padding)
	}
	if field.PageNumber != 1 {
		t.Errorf("page number = %d, want 1", field.PageNumber)
	}
}

func TestDecode_YAMLDocument(t *testing.T) {
	const sampleYAML = `
version: 1.0.0
metadata:
  form_number: W-2
  tax_year: 2025
fields:
  - field_id: w2_wages
    field_type: currency
    position: {x: 450, y: 300}
    dimensions: {width: 100, height: 15}
    value_reference:
      path: income.wages.total
      default_value: "0.00"
    alignment: right
`
	doc, err := annotation.Decode("w2.yaml", []byte(sampleYAML))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	field, ok := doc.FieldByID("w2_wages")
	if !ok {
		t.Fatal("field w2_wages not found")
	}
	if field.Alignment != annotation.AlignRight {
		t.Fatalf("alignment = %q, want right", field.Alignment)
	}
	if field.ValueReference.DefaultValue != "0.00" {
		t.Fatalf("default value = %v, want \"0.00\"", field.ValueReference.DefaultValue)
	}
}

func TestDecode_SchemaViolations(t *testing.T) {
	// Missing value_reference and an unknown field type.
	const bad = `{
		"version": "1.0.0",
		"metadata": {"form_number": "1040", "tax_year": 2025},
		"fields": [
			{
				"field_id": "broken",
				"field_type": "barcode",
				"position": {"x": 0, "y": 0},
				"dimensions": {"width": 10, "height": 10}
			}
		]
	}`

	_, err := annotation.Decode("bad.json", []byte(bad))
	var issuesErr *annotation.ValidationIssuesError
	if !errors.As(err, &issuesErr) {
		t.Fatalf("Decode error = %v, want *ValidationIssuesError", err)
	}
	if len(issuesErr.Issues) == 0 {
		t.Fatal("no issues reported")
	}
}

func TestValidate_ConfigurationDefects(t *testing.T) {
	doc := annotation.Document{
		Version:  "1.0.0",
		Metadata: annotation.Metadata{FormNumber: "1040", TaxYear: 2025},
		Fields: []annotation.Field{
			field("dup", "taxpayer.ssn"),
			field("dup", "taxpayer.ssn"),
			field("bad_path", "taxpayer..ssn"),
			field("bad_index", "wages[x]"),
			field("wrapped", "taxpayer.name"),
			field("offpage", "taxpayer.name"),
		},
	}
	doc.Fields[4].Overflow = annotation.OverflowWrap
	doc.Fields[5].Position = annotation.Position{X: 120, Y: 50, CoordinateSystem: annotation.CoordinatePercentage}
	doc.Normalize()

	issues := doc.Validate()

	wantSubstrings := []string{
		"duplicate field id",
		"malformed value reference path",
		"not supported",
		"outside 0-100",
	}
	joined := make([]string, len(issues))
	for i, issue := range issues {
		joined[i] = issue.String()
	}
	all := strings.Join(joined, "\n")
	for _, want := range wantSubstrings {
		if !strings.Contains(all, want) {
			t.Errorf("issues missing %q:\n%s", want, all)
		}
	}
	if len(issues) != 5 {
		t.Errorf("got %d issues, want 5:\n%s", len(issues), all)
	}
}

func TestLoader_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/1040.json": &fstest.MapFile{Data: []byte(sampleJSON)},
	}

	loader := annotation.NewLoader(annotation.WithFS(fsys))
	doc, err := loader.Load(context.Background(), annotation.SourceFromFS("forms/1040.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if doc.Metadata.FormNumber != "1040" {
		t.Fatalf("form number = %q, want 1040", doc.Metadata.FormNumber)
	}

	if _, err := loader.Load(context.Background(), annotation.SourceFromFS("forms/missing.json")); err == nil {
		t.Fatal("loading a missing file succeeded")
	}
}

func TestLoader_FromBytes(t *testing.T) {
	loader := annotation.NewLoader()
	doc, err := loader.Load(context.Background(), annotation.SourceFromBytes("inline.json", []byte(sampleJSON)))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(doc.Fields) != 2 {
		t.Fatalf("decoded %d fields, want 2", len(doc.Fields))
	}
}

func TestDocument_PageHelpers(t *testing.T) {
	doc, err := annotation.Decode("form_1040.json", []byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if got := doc.Pages(); !cmp.Equal([]int{1, 2}, got) {
		t.Fatalf("Pages() = %v, want [1 2]", got)
	}
	if got := len(doc.FieldsByPage(2)); got != 1 {
		t.Fatalf("FieldsByPage(2) returned %d fields, want 1", got)
	}

	// Page 2 has no configured dimensions and falls back to US Letter.
	size := doc.PageSize(2)
	if size.Width != annotation.LetterWidth || size.Height != annotation.LetterHeight {
		t.Fatalf("PageSize(2) = %+v, want letter fallback", size)
	}
}

func field(id, path string) annotation.Field {
	return annotation.Field{
		FieldID:        id,
		FieldType:      annotation.FieldTypeText,
		Position:       annotation.Position{X: 0, Y: 0},
		Dimensions:     annotation.Dimensions{Width: 100, Height: 20},
		ValueReference: annotation.ValueReference{Path: path},
	}
}
