package annotation

// FieldType enumerates the kinds of form fields an annotation may declare.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeNumber     FieldType = "number"
	FieldTypeCurrency   FieldType = "currency"
	FieldTypeDate       FieldType = "date"
	FieldTypeSSN        FieldType = "ssn"
	FieldTypeEIN        FieldType = "ein"
	FieldTypeCheckbox   FieldType = "checkbox"
	FieldTypeSignature  FieldType = "signature"
	FieldTypePercentage FieldType = "percentage"
)

// Alignment enumerates horizontal text alignment inside a field box.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// CoordinateSystem selects how a Position is interpreted.
type CoordinateSystem string

const (
	// CoordinateAbsolute positions are document units (points) from the
	// top-left origin and need no page context.
	CoordinateAbsolute CoordinateSystem = "absolute"
	// CoordinatePercentage positions are 0-100 percentages of the owning
	// page's dimensions and must be resolved before use.
	CoordinatePercentage CoordinateSystem = "percentage"
)

// Overflow enumerates the policies for display text wider than its box.
type Overflow string

const (
	OverflowTruncate Overflow = "truncate"
	OverflowShrink   Overflow = "shrink"
	// OverflowWrap is declared by the schema but not implemented; documents
	// using it are rejected at validation time.
	OverflowWrap  Overflow = "wrap"
	OverflowError Overflow = "error"
)

// Position locates a field on its page. Origin is the top-left corner.
type Position struct {
	X                float64          `json:"x" yaml:"x"`
	Y                float64          `json:"y" yaml:"y"`
	CoordinateSystem CoordinateSystem `json:"coordinate_system,omitempty" yaml:"coordinate_system,omitempty"`
}

// Dimensions is the width and height of a field box or page, in the same
// coordinate system as the owning position.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// FontStyle carries the text styling a render instruction preserves for the
// drawing surface.
type FontStyle struct {
	FontFamily string  `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	FontSize   float64 `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	Bold       bool    `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty" yaml:"italic,omitempty"`
	Color      string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// Padding insets the usable field box on each side, in points.
type Padding struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// ValueReference addresses a value in the nested data tree. DefaultValue is
// used verbatim when resolution fails; it may be nil, in which case the field
// renders as resolved-but-empty.
type ValueReference struct {
	Path         string `json:"path" yaml:"path"`
	DefaultValue any    `json:"default_value,omitempty" yaml:"default_value,omitempty"`
}

// FormattingRule converts a raw value into a canonical display string.
// Parameters are format-type specific; see pkg/format.
type FormattingRule struct {
	FormatType string         `json:"format_type" yaml:"format_type"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// ValidationRule is a declarative predicate over a field value paired with
// the error message shown verbatim on failure.
type ValidationRule struct {
	RuleType     string         `json:"rule_type" yaml:"rule_type"`
	Parameters   map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// Field is the complete annotation for a single form field.
type Field struct {
	FieldID        string         `json:"field_id" yaml:"field_id"`
	FieldName      string         `json:"field_name,omitempty" yaml:"field_name,omitempty"`
	FieldType      FieldType      `json:"field_type" yaml:"field_type"`
	Position       Position       `json:"position" yaml:"position"`
	Dimensions     Dimensions     `json:"dimensions" yaml:"dimensions"`
	ValueReference ValueReference `json:"value_reference" yaml:"value_reference"`

	Alignment        Alignment        `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	FontStyle        FontStyle        `json:"font_style,omitempty" yaml:"font_style,omitempty"`
	MaxLength        int              `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Formatting       *FormattingRule  `json:"formatting,omitempty" yaml:"formatting,omitempty"`
	Validation       []ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`
	Overflow         Overflow         `json:"overflow_behavior,omitempty" yaml:"overflow_behavior,omitempty"`
	CharacterSpacing float64          `json:"character_spacing,omitempty" yaml:"character_spacing,omitempty"`
	Padding          *Padding         `json:"padding,omitempty" yaml:"padding,omitempty"`

	PageNumber       int    `json:"page_number,omitempty" yaml:"page_number,omitempty"`
	Required         bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	IRSLineReference string `json:"irs_line_reference,omitempty" yaml:"irs_line_reference,omitempty"`
}

// Metadata identifies the form an annotation document targets.
type Metadata struct {
	FormNumber     string             `json:"form_number" yaml:"form_number"`
	FormName       string             `json:"form_name,omitempty" yaml:"form_name,omitempty"`
	TaxYear        int                `json:"tax_year" yaml:"tax_year"`
	FormVersion    string             `json:"form_version,omitempty" yaml:"form_version,omitempty"`
	PageDimensions map[int]Dimensions `json:"page_dimensions,omitempty" yaml:"page_dimensions,omitempty"`
	PDFTemplateURL string             `json:"pdf_template_url,omitempty" yaml:"pdf_template_url,omitempty"`
}

// Document is the top-level annotation specification for one form.
type Document struct {
	Version  string   `json:"version" yaml:"version"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Fields   []Field  `json:"fields" yaml:"fields"`
}
