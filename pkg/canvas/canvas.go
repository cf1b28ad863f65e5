package canvas

import (
	"sort"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/layout"
)

// Canvas is a minimal drawing surface. Coordinates are in points with the
// origin at the top-left, matching the instruction geometry.
type Canvas interface {
	// DrawText draws text with its baseline at y, starting at x.
	DrawText(x, y float64, text string, font annotation.FontStyle)
	// DrawRectangle strokes an outline, used for debug boxes.
	DrawRectangle(x, y, width, height float64)
}

// Option customises a replay.
type Option func(*replay)

// WithDebugBoxes strokes each field's bounding box before its text, making
// alignment and padding visible during template calibration.
func WithDebugBoxes() Option {
	return func(r *replay) {
		r.debugBoxes = true
	}
}

type replay struct {
	debugBoxes bool
}

// Replay draws every instruction onto the canvas in sequence order.
// Boxed-digit instructions draw one glyph per placed character at its fixed
// offset; everything else draws as a single run.
func Replay(instructions []layout.Instruction, target Canvas, options ...Option) {
	var r replay
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&r)
	}

	for _, inst := range instructions {
		if r.debugBoxes {
			target.DrawRectangle(inst.BoxX, inst.BoxY, inst.Width, inst.Height)
		}
		if len(inst.Characters) > 0 {
			for _, placed := range inst.Characters {
				target.DrawText(inst.X+placed.OffsetX, inst.Y, placed.Char, inst.Font)
			}
			continue
		}
		if inst.Text == "" {
			continue
		}
		target.DrawText(inst.X, inst.Y, inst.Text, inst.Font)
	}
}

// ByPage groups instructions by page number, preserving their order within
// each page. The returned page numbers are sorted ascending.
func ByPage(instructions []layout.Instruction) (pages []int, grouped map[int][]layout.Instruction) {
	grouped = make(map[int][]layout.Instruction)
	for _, inst := range instructions {
		grouped[inst.Page] = append(grouped[inst.Page], inst)
	}
	pages = make([]int, 0, len(grouped))
	for page := range grouped {
		pages = append(pages, page)
	}
	sort.Ints(pages)
	return pages, grouped
}
