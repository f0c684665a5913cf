package grid

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/paper"
)

var a5 = paper.Dimensions{Width: 148, Height: 210}

func floatConfig() Config {
	c := DefaultConfig()
	c.Pitch = Pitch5mm
	c.MinimumMargin = 4
	c.Alignment = Float
	return c
}

func mustLayout(t *testing.T, d paper.Dimensions, c Config, side binding.Side) Geometry {
	t.Helper()
	g, err := Layout(d, c, side)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	return g
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLayoutA5FloatLeft(t *testing.T) {
	g := mustLayout(t, a5, floatConfig(), binding.Left)

	if g.Columns != 28 {
		t.Errorf("Columns = %d, want 28", g.Columns)
	}
	if g.Rows != 40 {
		t.Errorf("Rows = %d, want 40", g.Rows)
	}
	if g.GridWidth != 140 {
		t.Errorf("GridWidth = %v, want 140", g.GridWidth)
	}
	if g.GridHeight != 200 {
		t.Errorf("GridHeight = %v, want 200", g.GridHeight)
	}
	if g.OriginY != 5 {
		t.Errorf("OriginY = %v, want 5", g.OriginY)
	}
	if g.AdjustedOriginX != 4 {
		t.Errorf("AdjustedOriginX = %v, want 4", g.AdjustedOriginX)
	}
	if len(g.Vertical) != 29 {
		t.Fatalf("len(Vertical) = %d, want 29", len(g.Vertical))
	}
	if g.Vertical[0] != 4 || g.Vertical[28] != 144 {
		t.Errorf("Vertical = [%v ... %v], want [4 ... 144]", g.Vertical[0], g.Vertical[28])
	}
	if len(g.Horizontal) != 41 {
		t.Fatalf("len(Horizontal) = %d, want 41", len(g.Horizontal))
	}
	if g.Horizontal[0] != 5 || g.Horizontal[40] != 205 {
		t.Errorf("Horizontal = [%v ... %v], want [5 ... 205]", g.Horizontal[0], g.Horizontal[40])
	}
	if g.Border != nil || g.Glyph != nil {
		t.Error("Border and Glyph should be nil when disabled")
	}
}

func TestLayoutA5FloatRight(t *testing.T) {
	g := mustLayout(t, a5, floatConfig(), binding.Right)

	if g.AdjustedOriginX != 4 {
		t.Errorf("AdjustedOriginX = %v, want 4", g.AdjustedOriginX)
	}
	if g.AdjustedOriginX+g.GridWidth != 144 {
		t.Errorf("right edge = %v, want 144", g.AdjustedOriginX+g.GridWidth)
	}
}

func TestLayoutExtraMargin(t *testing.T) {
	tests := []struct {
		name      string
		alignment Alignment
		side      binding.Side
		wantCols  int
		wantX     float64
		wantOrigX float64
	}{
		{"float left", Float, binding.Left, 26, 4, 4},
		{"float right", Float, binding.Right, 26, 14, 4},
		{"center left", Center, binding.Left, 26, 4, 4},
		{"center right", Center, binding.Right, 26, 14, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := floatConfig()
			c.ExtraMargin = true
			c.Alignment = tt.alignment

			g := mustLayout(t, a5, c, tt.side)
			if g.Columns != tt.wantCols {
				t.Errorf("Columns = %d, want %d", g.Columns, tt.wantCols)
			}
			if g.OriginX != tt.wantOrigX {
				t.Errorf("OriginX = %v, want %v", g.OriginX, tt.wantOrigX)
			}
			if g.AdjustedOriginX != tt.wantX {
				t.Errorf("AdjustedOriginX = %v, want %v", g.AdjustedOriginX, tt.wantX)
			}
			if g.ExtraMargin != ExtraMargin {
				t.Errorf("ExtraMargin = %v, want %v", g.ExtraMargin, ExtraMargin)
			}
		})
	}
}

func TestLayoutCenterNoExtra(t *testing.T) {
	c := floatConfig()
	c.Alignment = Center
	c.MinimumMargin = 6

	// (148 - 12) / 5 = 27.2 -> 27 columns, 135mm wide, 6.5mm either side.
	left := mustLayout(t, a5, c, binding.Left)
	right := mustLayout(t, a5, c, binding.Right)

	if left.Columns != 27 {
		t.Errorf("Columns = %d, want 27", left.Columns)
	}
	if left.OriginX != 6.5 {
		t.Errorf("OriginX = %v, want 6.5", left.OriginX)
	}
	if left.AdjustedOriginX != right.AdjustedOriginX {
		t.Errorf("center alignment should not depend on side: %v vs %v", left.AdjustedOriginX, right.AdjustedOriginX)
	}
}

func TestLayoutBorderAndGlyph(t *testing.T) {
	c := floatConfig()
	c.ShowBorder = true
	c.ShowPageNumber = true

	left := mustLayout(t, a5, c, binding.Left)
	if left.Border == nil {
		t.Fatal("Border should be set")
	}
	if *left.Border != (Rect{X: 4, Y: 5, Width: 140, Height: 200}) {
		t.Errorf("Border = %+v, want {4 5 140 200}", *left.Border)
	}
	if left.Glyph == nil {
		t.Fatal("Glyph should be set")
	}
	if left.Glyph.X != 6.5 || left.Glyph.Y != 202.5 {
		t.Errorf("left Glyph = (%v, %v), want (6.5, 202.5)", left.Glyph.X, left.Glyph.Y)
	}
	if left.Glyph.FontSize != 3 {
		t.Errorf("Glyph.FontSize = %v, want 3", left.Glyph.FontSize)
	}

	right := mustLayout(t, a5, c, binding.Right)
	if right.Glyph.X != 141.5 || right.Glyph.Y != 202.5 {
		t.Errorf("right Glyph = (%v, %v), want (141.5, 202.5)", right.Glyph.X, right.Glyph.Y)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	c := floatConfig()
	c.MinimumMargin = 40
	c.ShowBorder = true
	c.ShowPageNumber = true

	g := mustLayout(t, paper.MustDimensions(paper.A7), c, binding.Left)

	if g.Columns != 0 || g.Rows != 0 {
		t.Errorf("Columns, Rows = %d, %d, want 0, 0", g.Columns, g.Rows)
	}
	if !g.Empty() {
		t.Error("Empty() should be true")
	}
	if len(g.Vertical) != 0 || len(g.Horizontal) != 0 || len(g.Lines()) != 0 {
		t.Error("degenerate layout should produce no lines")
	}
	if g.Border != nil || g.Glyph != nil {
		t.Error("degenerate layout should produce no border or glyph")
	}
	if g.OriginY != 52.5 {
		t.Errorf("OriginY = %v, want 52.5", g.OriginY)
	}
}

func TestLayoutExactFitTolerance(t *testing.T) {
	c := floatConfig()
	c.Pitch = Pitch394mm
	c.MinimumMargin = 0

	d := paper.Dimensions{Width: 10 * 3.94, Height: 20 * 3.94}
	g := mustLayout(t, d, c, binding.Left)
	if g.Columns != 10 || g.Rows != 20 {
		t.Errorf("Columns, Rows = %d, %d, want 10, 20", g.Columns, g.Rows)
	}
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		d      paper.Dimensions
		mutate func(*Config)
		side   binding.Side
	}{
		{"zero pitch", a5, func(c *Config) { c.Pitch = 0 }, binding.Left},
		{"negative pitch", a5, func(c *Config) { c.Pitch = -5 }, binding.Left},
		{"infinite pitch", a5, func(c *Config) { c.Pitch = Pitch(math.Inf(1)) }, binding.Left},
		{"NaN margin", a5, func(c *Config) { c.MinimumMargin = math.NaN() }, binding.Left},
		{"negative margin", a5, func(c *Config) { c.MinimumMargin = -1 }, binding.Left},
		{"bad alignment", a5, func(c *Config) { c.Alignment = "justify" }, binding.Left},
		{"bad side", a5, func(*Config) {}, binding.Side("Top")},
		{"tiny pitch", a5, func(c *Config) { c.Pitch = 1e-300 }, binding.Left},
		{"denser than MaxCells", a5, func(c *Config) { c.Pitch = 0.01; c.MinimumMargin = 0 }, binding.Left},
		{"zero paper", paper.Dimensions{}, func(*Config) {}, binding.Left},
		{"NaN paper", paper.Dimensions{Width: math.NaN(), Height: 100}, func(*Config) {}, binding.Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := floatConfig()
			tt.mutate(&c)
			g, err := Layout(tt.d, c, tt.side)
			if err == nil {
				t.Fatal("Layout() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
			if !reflect.DeepEqual(g, Geometry{}) {
				t.Error("failed Layout should return a zero Geometry")
			}
		})
	}
}

func TestLayoutDeterministic(t *testing.T) {
	c := floatConfig()
	c.Pitch = Pitch394mm
	c.ShowBorder = true
	c.ShowPageNumber = true
	c.ExtraMargin = true

	a := mustLayout(t, a5, c, binding.Right)
	b := mustLayout(t, a5, c, binding.Right)
	if !reflect.DeepEqual(a, b) {
		t.Error("Layout should be deterministic for identical inputs")
	}
}

// TestLayoutProperties sweeps the whole catalog and every supported pitch.
func TestLayoutProperties(t *testing.T) {
	for _, size := range paper.All() {
		d := paper.MustDimensions(size)
		for _, pitch := range Pitches() {
			for _, extra := range []bool{false, true} {
				for _, margin := range []float64{0, 4, 7.5} {
					c := DefaultConfig()
					c.Pitch = pitch
					c.MinimumMargin = margin
					c.ExtraMargin = extra

					c.Alignment = Float
					left := mustLayout(t, d, c, binding.Left)
					right := mustLayout(t, d, c, binding.Right)

					c.Alignment = Center
					cl := mustLayout(t, d, c, binding.Left)
					cr := mustLayout(t, d, c, binding.Right)

					for _, g := range []Geometry{left, right, cl, cr} {
						if g.Columns < 0 || g.Rows < 0 {
							t.Fatalf("%s %v: negative extent %d x %d", size, pitch, g.Columns, g.Rows)
						}
						if g.GridWidth != float64(g.Columns)*float64(pitch) {
							t.Errorf("%s %v: GridWidth %v != %d * %v", size, pitch, g.GridWidth, g.Columns, pitch)
						}
						if g.GridHeight != float64(g.Rows)*float64(pitch) {
							t.Errorf("%s %v: GridHeight %v != %d * %v", size, pitch, g.GridHeight, g.Rows, pitch)
						}
						if !g.Empty() && (len(g.Vertical) != g.Columns+1 || len(g.Horizontal) != g.Rows+1) {
							t.Errorf("%s %v: line counts %d/%d for %dx%d", size, pitch,
								len(g.Vertical), len(g.Horizontal), g.Columns, g.Rows)
						}
						if !approx(g.OriginY, (d.Height-g.GridHeight)/2) {
							t.Errorf("%s %v: grid not centred vertically", size, pitch)
						}
					}

					if left.AdjustedOriginX != margin {
						t.Errorf("%s %v: float left AdjustedOriginX = %v, want %v", size, pitch, left.AdjustedOriginX, margin)
					}
					if !approx(right.AdjustedOriginX+right.GridWidth, d.Width-margin) {
						t.Errorf("%s %v extra=%v: float right edge = %v, want %v", size, pitch, extra,
							right.AdjustedOriginX+right.GridWidth, d.Width-margin)
					}
					if cl.OriginX != cr.OriginX {
						t.Errorf("%s %v: center OriginX differs by side: %v vs %v", size, pitch, cl.OriginX, cr.OriginX)
					}
				}
			}
		}
	}
}

func TestLines(t *testing.T) {
	g := mustLayout(t, a5, floatConfig(), binding.Left)
	lines := g.Lines()

	if len(lines) != 29+41 {
		t.Fatalf("len(Lines()) = %d, want 70", len(lines))
	}
	first := lines[0]
	if first != (Line{X1: 4, Y1: 5, X2: 4, Y2: 205}) {
		t.Errorf("first vertical = %+v, want {4 5 4 205}", first)
	}
	lastH := lines[len(lines)-1]
	if lastH != (Line{X1: 4, Y1: 205, X2: 144, Y2: 205}) {
		t.Errorf("last horizontal = %+v, want {4 205 144 205}", lastH)
	}
	if g.Bounds() != (Rect{X: 4, Y: 5, Width: 140, Height: 200}) {
		t.Errorf("Bounds() = %+v", g.Bounds())
	}
}
