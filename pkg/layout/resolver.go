package layout

import (
	"fmt"

	"github.com/goliatone/go-formfill/pkg/annotation"
)

// Option customises the resolver configuration.
type Option func(*Resolver)

// WithMetrics injects the font metrics used for width estimation.
func WithMetrics(metrics FontMetrics) Option {
	return func(r *Resolver) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

// WithShrinkStep sets the fixed decrement (in points) the shrink policy
// applies to the font size on each attempt.
func WithShrinkStep(step float64) Option {
	return func(r *Resolver) {
		if step > 0 {
			r.shrinkStep = step
		}
	}
}

// WithMinFontSize sets the floor below which shrink stops and falls back to
// truncation.
func WithMinFontSize(size float64) Option {
	return func(r *Resolver) {
		if size > 0 {
			r.minFontSize = size
		}
	}
}

// WithEllipsis appends the given marker to truncated text. Truncation keeps
// the marker inside the padded box. Empty (the default) truncates bare.
func WithEllipsis(marker string) Option {
	return func(r *Resolver) {
		r.ellipsis = marker
	}
}

// Resolver computes render geometry. It is stateless across fields and safe
// for concurrent use once constructed.
type Resolver struct {
	metrics     FontMetrics
	shrinkStep  float64
	minFontSize float64
	ellipsis    string
}

// NewResolver constructs a Resolver applying any provided options. Defaults:
// Courier metrics, 0.5pt shrink steps, 4pt font floor, no ellipsis.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{
		metrics:     CourierMetrics(),
		shrinkStep:  0.5,
		minFontSize: 4,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Layout resolves one field's declared position, alignment, padding,
// character spacing, and overflow policy into a render instruction for the
// given display string. page supplies the owning page's dimensions for
// percentage coordinates.
func (r *Resolver) Layout(field annotation.Field, page annotation.Dimensions, display string) (Instruction, error) {
	x, y := field.Position.X, field.Position.Y
	width, height := field.Dimensions.Width, field.Dimensions.Height
	if field.Position.CoordinateSystem == annotation.CoordinatePercentage {
		x = x / 100 * page.Width
		y = y / 100 * page.Height
		width = width / 100 * page.Width
		height = height / 100 * page.Height
	}

	padding := effectivePadding(field.Padding)
	usable := width - padding.Left - padding.Right
	if usable < 0 {
		usable = 0
	}

	font := field.FontStyle
	if font.FontSize <= 0 {
		font.FontSize = 10
	}

	inst := Instruction{
		FieldID:   field.FieldID,
		Page:      field.PageNumber,
		Alignment: field.Alignment,
		Font:      font,
		Width:     width,
		Height:    height,
		BoxX:      x,
		BoxY:      y,
		Y:         baseline(y, height, font.FontSize),
	}

	// Boxed-digit fields bypass string layout entirely: one glyph per rune at
	// fixed increments from the padded left edge.
	if field.CharacterSpacing > 0 {
		inst.X = x + padding.Left
		inst.CharacterSpacing = field.CharacterSpacing
		runes := []rune(display)
		inst.Characters = make([]PlacedCharacter, len(runes))
		for i, char := range runes {
			inst.Characters[i] = PlacedCharacter{
				Char:    string(char),
				OffsetX: float64(i) * field.CharacterSpacing,
			}
		}
		inst.Text = display
		return inst, nil
	}

	if field.Overflow == annotation.OverflowWrap {
		return Instruction{}, &Error{
			Kind:    ErrUnsupported,
			FieldID: field.FieldID,
			Detail:  fmt.Sprintf("overflow policy %q is not implemented", field.Overflow),
		}
	}

	text := display
	textWidth := r.metrics.StringWidth(text, font)

	if textWidth > usable {
		switch field.Overflow {
		case annotation.OverflowError:
			return Instruction{}, &Error{
				Kind:    ErrOverflow,
				FieldID: field.FieldID,
				Detail:  fmt.Sprintf("text width %.2f exceeds padded box width %.2f", textWidth, usable),
			}
		case annotation.OverflowShrink:
			font.FontSize, textWidth = r.shrink(text, font, usable)
			inst.Font = font
			inst.Y = baseline(y, height, font.FontSize)
			if textWidth > usable {
				text, textWidth = r.truncate(text, font, usable)
			}
		default:
			// Unknown policies were rejected at document validation; treat
			// anything unrecognized like truncate so layout stays total.
			text, textWidth = r.truncate(text, font, usable)
		}
	}

	if field.Overflow == annotation.OverflowTruncate && field.MaxLength > 0 {
		if runes := []rune(text); len(runes) > field.MaxLength {
			text = string(runes[:field.MaxLength])
			textWidth = r.metrics.StringWidth(text, font)
		}
	}

	inst.Text = text
	switch field.Alignment {
	case annotation.AlignRight:
		inst.X = x + width - padding.Right - textWidth
	case annotation.AlignCenter:
		inst.X = x + (width-textWidth)/2
	default:
		inst.X = x + padding.Left
	}
	return inst, nil
}

// shrink lowers the font size in fixed decrements until the text fits or the
// minimum size floor is reached. It returns the final size and width.
func (r *Resolver) shrink(text string, font annotation.FontStyle, usable float64) (float64, float64) {
	size := font.FontSize
	width := r.metrics.StringWidth(text, font)
	for width > usable && size-r.shrinkStep >= r.minFontSize {
		size -= r.shrinkStep
		font.FontSize = size
		width = r.metrics.StringWidth(text, font)
	}
	return size, width
}

// truncate cuts the string until it (plus any configured ellipsis) fits the
// usable width. The cut is irreversible.
func (r *Resolver) truncate(text string, font annotation.FontStyle, usable float64) (string, float64) {
	runes := []rune(text)
	for len(runes) > 0 {
		candidate := string(runes)
		if r.ellipsis != "" {
			candidate += r.ellipsis
		}
		if width := r.metrics.StringWidth(candidate, font); width <= usable {
			return candidate, width
		}
		runes = runes[:len(runes)-1]
	}
	if r.ellipsis != "" && r.metrics.StringWidth(r.ellipsis, font) <= usable {
		return r.ellipsis, r.metrics.StringWidth(r.ellipsis, font)
	}
	return "", 0
}

// baseline vertically centers the text in the box: the glyph top sits at
// boxTop + (height - size)/2 and the baseline roughly 0.8em below it.
func baseline(boxY, height, fontSize float64) float64 {
	return boxY + (height-fontSize)/2 + fontSize*0.8
}

func effectivePadding(p *annotation.Padding) annotation.Padding {
	if p == nil {
		return annotation.Padding{Top: 0, Right: 2, Bottom: 0, Left: 2}
	}
	return *p
}
