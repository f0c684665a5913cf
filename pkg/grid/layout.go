package grid

import (
	"math"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/paper"
)

// floorTolerance absorbs binary rounding in the column/row division, so that
// an exact fit such as 210/3 is not floored to 69.
const floorTolerance = 1e-9

// MaxCells bounds the columns and rows of one page.
const MaxCells = 10_000

// Rect is an axis-aligned rectangle in millimetres.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Line is a drawable segment in millimetres.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Glyph is the anchor of the page-number label. X and Y are the centre of the
// text; FontSize is in millimetres.
type Glyph struct {
	X, Y     float64
	FontSize float64
}

// Geometry is the computed layout of one page. It is derived fresh per
// render and never mutated after Layout returns it.
type Geometry struct {
	PaperWidth  float64
	PaperHeight float64
	Pitch       float64
	Side        binding.Side
	Alignment   Alignment
	ExtraMargin float64 // 0 or ExtraMargin

	Columns    int
	Rows       int
	GridWidth  float64 // Columns * Pitch
	GridHeight float64 // Rows * Pitch

	// OriginX is the alignment-dependent left edge before the extra-margin
	// offset; AdjustedOriginX is where the first vertical line is drawn.
	OriginX         float64
	OriginY         float64
	AdjustedOriginX float64

	Vertical   []float64 // x-offsets, Columns+1 entries
	Horizontal []float64 // y-offsets, Rows+1 entries

	Border *Rect  // nil unless ShowBorder
	Glyph  *Glyph // nil unless ShowPageNumber
}

// Layout computes the grid geometry for one page of size d placed on side.
func Layout(d paper.Dimensions, c Config, side binding.Side) (Geometry, error) {
	if err := checkInputs(d, c, side); err != nil {
		return Geometry{}, err
	}

	pitch := float64(c.Pitch)
	margin := c.MinimumMargin
	extra := 0.0
	if c.ExtraMargin {
		extra = ExtraMargin
	}

	colSpan := (d.Width - 2*margin - extra) / pitch
	rowSpan := (d.Height - 2*margin) / pitch
	if colSpan > MaxCells || rowSpan > MaxCells {
		return Geometry{}, errors.New(errors.ErrCodeInvalidConfig,
			"invalid layout configuration: grid too dense (pitch %v mm on %vx%v mm)", float64(c.Pitch), d.Width, d.Height)
	}
	cols := cellCount(colSpan)
	rows := cellCount(rowSpan)
	if cols == 0 || rows == 0 {
		cols, rows = 0, 0
	}

	g := Geometry{
		PaperWidth:  d.Width,
		PaperHeight: d.Height,
		Pitch:       pitch,
		Side:        side,
		Alignment:   c.Alignment,
		ExtraMargin: extra,
		Columns:     cols,
		Rows:        rows,
		GridWidth:   float64(cols) * pitch,
		GridHeight:  float64(rows) * pitch,
	}

	g.OriginY = (d.Height - g.GridHeight) / 2
	switch c.Alignment {
	case Center:
		g.OriginX = (d.Width - g.GridWidth - extra) / 2
	case Float:
		if side == binding.Left {
			g.OriginX = margin
		} else {
			g.OriginX = d.Width - margin - g.GridWidth - extra
		}
	}

	offset := 0.0
	if side == binding.Right {
		offset = extra
	}
	g.AdjustedOriginX = g.OriginX + offset

	if cols == 0 {
		return g, nil
	}

	g.Vertical = make([]float64, cols+1)
	for i := range g.Vertical {
		g.Vertical[i] = g.AdjustedOriginX + float64(i)*pitch
	}
	g.Horizontal = make([]float64, rows+1)
	for i := range g.Horizontal {
		g.Horizontal[i] = g.OriginY + float64(i)*pitch
	}

	if c.ShowBorder {
		g.Border = &Rect{X: g.AdjustedOriginX, Y: g.OriginY, Width: g.GridWidth, Height: g.GridHeight}
	}
	if c.ShowPageNumber {
		x := g.AdjustedOriginX + pitch/2
		if side == binding.Right {
			x = g.AdjustedOriginX + g.GridWidth - pitch/2
		}
		g.Glyph = &Glyph{
			X:        x,
			Y:        g.OriginY + g.GridHeight - pitch/2,
			FontSize: pitch * glyphScale,
		}
	}
	return g, nil
}

func checkInputs(d paper.Dimensions, c Config, side binding.Side) error {
	switch {
	case !finite(d.Width) || !finite(d.Height) || d.Width <= 0 || d.Height <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid layout configuration: paper %vx%v mm", d.Width, d.Height)
	case !finite(float64(c.Pitch)) || c.Pitch <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid layout configuration: pitch must be positive, got %v", float64(c.Pitch))
	case !finite(c.MinimumMargin) || c.MinimumMargin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid layout configuration: minimum margin %v", c.MinimumMargin)
	case !c.Alignment.Valid():
		return errors.New(errors.ErrCodeInvalidConfig, "invalid layout configuration: alignment %q", c.Alignment)
	case !side.Valid():
		return errors.New(errors.ErrCodeInvalidConfig, "invalid layout configuration: side %q", side)
	}
	return nil
}

func cellCount(v float64) int {
	n := math.Floor(v + floorTolerance)
	if n <= 0 {
		return 0
	}
	return int(n)
}

// Lines returns the drawable segments: vertical lines first, left to right,
// then horizontal lines, top to bottom.
func (g Geometry) Lines() []Line {
	if g.Columns == 0 {
		return nil
	}
	top, bottom := g.OriginY, g.OriginY+g.GridHeight
	left, right := g.AdjustedOriginX, g.AdjustedOriginX+g.GridWidth

	lines := make([]Line, 0, len(g.Vertical)+len(g.Horizontal))
	for _, x := range g.Vertical {
		lines = append(lines, Line{X1: x, Y1: top, X2: x, Y2: bottom})
	}
	for _, y := range g.Horizontal {
		lines = append(lines, Line{X1: left, Y1: y, X2: right, Y2: y})
	}
	return lines
}

// Bounds returns the rectangle covered by the grid block.
func (g Geometry) Bounds() Rect {
	return Rect{X: g.AdjustedOriginX, Y: g.OriginY, Width: g.GridWidth, Height: g.GridHeight}
}

// Empty reports whether the page is too small to hold a single cell.
func (g Geometry) Empty() bool { return g.Columns == 0 }
