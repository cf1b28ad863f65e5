// Package canvas replays resolved render instructions onto a drawing
// surface. The Canvas interface is the seam between layout (pure geometry)
// and whatever actually draws: a PDF writer, an image rasterizer, or a test
// recorder. Replay walks the instruction sequence in order and emits one
// DrawText call per instruction, or one per character for boxed-digit fields.
package canvas
