package layout

import "github.com/goliatone/go-formfill/pkg/annotation"

// PlacedCharacter is one glyph of a character-spaced field with its x-offset
// in points from the instruction's anchor.
type PlacedCharacter struct {
	Char    string  `json:"char"`
	OffsetX float64 `json:"offset_x"`
}

// Instruction is the final, page-absolute, ready-to-draw description of one
// field's output. Coordinates are document units (points) from the top-left
// page origin; Y is the text baseline.
type Instruction struct {
	FieldID string `json:"field_id"`
	Page    int    `json:"page"`

	X float64 `json:"x"`
	Y float64 `json:"y"`

	Text      string               `json:"text"`
	Alignment annotation.Alignment `json:"alignment"`
	Font      annotation.FontStyle `json:"font"`

	// CharacterSpacing and Characters are set for boxed-digit fields; the
	// canvas draws each character at X+OffsetX instead of the whole string.
	CharacterSpacing float64           `json:"character_spacing,omitempty"`
	Characters       []PlacedCharacter `json:"characters,omitempty"`

	// Width and Height are the field box extents after any percentage
	// conversion, for callers that draw borders or debug boxes.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// BoxX and BoxY anchor the field box itself (X is the text anchor and
	// moves with alignment).
	BoxX float64 `json:"box_x"`
	BoxY float64 `json:"box_y"`
}
