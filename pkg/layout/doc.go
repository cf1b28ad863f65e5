// Package layout turns a field annotation and its display string into
// concrete draw geometry for a page canvas.
//
// The resolver converts percentage positions to absolute points, insets the
// box by its padding, resolves alignment against estimated text width, lays
// out character-spaced fields (boxed digits such as SSNs) one character at a
// time, and applies the field's overflow policy. Width estimation goes
// through the FontMetrics seam so callers with real font data can supply
// exact measurements.
package layout
