package annotation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formfill/pkg/datatree"
)

// LetterWidth and LetterHeight are the US Letter page size in points, used
// when a page has no configured dimensions.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Issue is one configuration defect found during document validation.
type Issue struct {
	FieldID string `json:"field_id,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.FieldID == "" {
		return i.Message
	}
	return i.FieldID + ": " + i.Message
}

// ValidationIssuesError aggregates every configuration defect in a document
// so callers see the complete picture in one pass.
type ValidationIssuesError struct {
	Issues []Issue
}

func (e *ValidationIssuesError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("annotation: document has %d configuration defect(s): %s",
		len(e.Issues), strings.Join(parts, "; "))
}

// FieldByID retrieves a field annotation by its unique id.
func (d *Document) FieldByID(id string) (Field, bool) {
	for _, field := range d.Fields {
		if field.FieldID == id {
			return field, true
		}
	}
	return Field{}, false
}

// FieldsByPage returns the fields on a page, preserving document order.
func (d *Document) FieldsByPage(page int) []Field {
	var out []Field
	for _, field := range d.Fields {
		if field.PageNumber == page {
			out = append(out, field)
		}
	}
	return out
}

// PageSize returns the configured dimensions of a page, falling back to US
// Letter when the page has none.
func (d *Document) PageSize(page int) Dimensions {
	if dims, ok := d.Metadata.PageDimensions[page]; ok && dims.Width > 0 && dims.Height > 0 {
		return dims
	}
	return Dimensions{Width: LetterWidth, Height: LetterHeight}
}

// Pages returns the sorted distinct page numbers referenced by fields.
func (d *Document) Pages() []int {
	seen := make(map[int]bool)
	var pages []int
	for _, field := range d.Fields {
		if !seen[field.PageNumber] {
			seen[field.PageNumber] = true
			pages = append(pages, field.PageNumber)
		}
	}
	for i := 1; i < len(pages); i++ {
		for j := i; j > 0 && pages[j] < pages[j-1]; j-- {
			pages[j], pages[j-1] = pages[j-1], pages[j]
		}
	}
	return pages
}

// Normalize applies the documented defaults in place: left alignment,
// Courier 10pt black text, truncate overflow, {0,2,0,2} padding, page 1.
// Loaders call it once after decoding; hand-built documents should call it
// before use.
func (d *Document) Normalize() {
	if d.Version == "" {
		d.Version = "1.0.0"
	}
	if d.Metadata.FormVersion == "" {
		d.Metadata.FormVersion = "1.0"
	}
	for i := range d.Fields {
		field := &d.Fields[i]
		if field.Position.CoordinateSystem == "" {
			field.Position.CoordinateSystem = CoordinateAbsolute
		}
		if field.Alignment == "" {
			field.Alignment = AlignLeft
		}
		if field.Overflow == "" {
			field.Overflow = OverflowTruncate
		}
		if field.FontStyle.FontFamily == "" {
			field.FontStyle.FontFamily = "Courier"
		}
		if field.FontStyle.FontSize <= 0 {
			field.FontStyle.FontSize = 10
		}
		if field.FontStyle.Color == "" {
			field.FontStyle.Color = "#000000"
		}
		if field.Padding == nil {
			field.Padding = &Padding{Top: 0, Right: 2, Bottom: 0, Left: 2}
		}
		if field.PageNumber == 0 {
			field.PageNumber = 1
		}
	}
}

// Validate reports every configuration defect in the document. Defects are
// distinct from missing-data conditions: they describe an annotation that can
// never process correctly and must surface before any field is rendered.
func (d *Document) Validate() []Issue {
	var issues []Issue

	if strings.TrimSpace(d.Version) == "" {
		issues = append(issues, Issue{Message: "document version is required"})
	}

	seen := make(map[string]bool, len(d.Fields))
	for _, field := range d.Fields {
		issues = append(issues, validateField(field, seen)...)
	}
	return issues
}

func validateField(field Field, seen map[string]bool) []Issue {
	var issues []Issue
	report := func(msg string, args ...any) {
		issues = append(issues, Issue{FieldID: field.FieldID, Message: fmt.Sprintf(msg, args...)})
	}

	if strings.TrimSpace(field.FieldID) == "" {
		report("field id is required")
	} else if seen[field.FieldID] {
		report("duplicate field id")
	} else {
		seen[field.FieldID] = true
	}

	switch field.FieldType {
	case FieldTypeText, FieldTypeNumber, FieldTypeCurrency, FieldTypeDate,
		FieldTypeSSN, FieldTypeEIN, FieldTypeCheckbox, FieldTypeSignature, FieldTypePercentage:
	default:
		report("unknown field type %q", field.FieldType)
	}

	switch field.Alignment {
	case AlignLeft, AlignRight, AlignCenter:
	default:
		report("unknown alignment %q", field.Alignment)
	}

	switch field.Position.CoordinateSystem {
	case CoordinateAbsolute:
	case CoordinatePercentage:
		if field.Position.X < 0 || field.Position.X > 100 || field.Position.Y < 0 || field.Position.Y > 100 {
			report("percentage position (%.2f, %.2f) outside 0-100", field.Position.X, field.Position.Y)
		}
	default:
		report("unknown coordinate system %q", field.Position.CoordinateSystem)
	}

	switch field.Overflow {
	case OverflowTruncate, OverflowShrink, OverflowError:
	case OverflowWrap:
		report("overflow policy %q is declared but not supported", OverflowWrap)
	default:
		report("unknown overflow policy %q", field.Overflow)
	}

	if field.Dimensions.Width < 0 || field.Dimensions.Height < 0 {
		report("dimensions must be non-negative")
	}
	if field.CharacterSpacing < 0 {
		report("character spacing must be positive")
	}
	if field.MaxLength < 0 {
		report("max length must be non-negative")
	}

	if strings.TrimSpace(field.ValueReference.Path) == "" {
		report("value reference path is required")
	} else if _, err := datatree.ParsePath(field.ValueReference.Path); err != nil {
		issues = append(issues, Issue{
			FieldID: field.FieldID,
			Path:    field.ValueReference.Path,
			Message: fmt.Sprintf("malformed value reference path: %v", err),
		})
	}

	return issues
}
