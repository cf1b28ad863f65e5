package layout

import "github.com/goliatone/go-formfill/pkg/annotation"

// FontMetrics estimates rendered text width for alignment and overflow math.
// Implementations backed by real font data can replace the built-in
// approximation.
type FontMetrics interface {
	StringWidth(text string, font annotation.FontStyle) float64
}

// FixedWidthMetrics approximates a monospaced face: every glyph advances by
// EmFraction of the font size. Courier's advance width is 600/1000 em, which
// is the default and matches the Courier 10pt house style of IRS form fills.
type FixedWidthMetrics struct {
	EmFraction float64
}

// CourierMetrics returns the default metrics used when none are configured.
func CourierMetrics() FixedWidthMetrics {
	return FixedWidthMetrics{EmFraction: 0.6}
}

// StringWidth implements FontMetrics.
func (m FixedWidthMetrics) StringWidth(text string, font annotation.FontStyle) float64 {
	fraction := m.EmFraction
	if fraction <= 0 {
		fraction = 0.6
	}
	size := font.FontSize
	if size <= 0 {
		size = 10
	}
	return float64(len([]rune(text))) * fraction * size
}
