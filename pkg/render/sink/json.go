package sink

import (
	"encoding/json"
	"strconv"

	"github.com/matzehuels/gridda/pkg/notebook"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
	lines  bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithJSONLines adds the drawable line segments of every page, not only the
// line offsets.
func WithJSONLines() JSONOption { return func(r *jsonRenderer) { r.lines = true } }

type jsonOutput struct {
	Paper  string     `json:"paper"`
	Width  float64    `json:"width_mm"`
	Height float64    `json:"height_mm"`
	Pitch  float64    `json:"pitch_mm"`
	Pages  []jsonPage `json:"pages"`
}

type jsonPage struct {
	ID              string     `json:"id"`
	Number          int        `json:"number"`
	Side            string     `json:"side"`
	Title           string     `json:"title,omitempty"`
	Selected        bool       `json:"selected,omitempty"`
	Columns         int        `json:"columns"`
	Rows            int        `json:"rows"`
	GridWidth       float64    `json:"grid_width"`
	GridHeight      float64    `json:"grid_height"`
	OriginX         float64    `json:"origin_x"`
	OriginY         float64    `json:"origin_y"`
	AdjustedOriginX float64    `json:"adjusted_origin_x"`
	Vertical        []float64  `json:"vertical"`
	Horizontal      []float64  `json:"horizontal"`
	Border          *jsonRect  `json:"border,omitempty"`
	Glyph           *jsonGlyph `json:"glyph,omitempty"`
	Lines           []jsonLine `json:"lines,omitempty"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonGlyph struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
	Text     string  `json:"text"`
}

type jsonLine struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// RenderJSON exports the geometry of every sheet.
func RenderJSON(sheets []notebook.Sheet, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Pages: make([]jsonPage, 0, len(sheets))}
	if len(sheets) > 0 {
		first := sheets[0]
		out.Paper = string(first.Paper)
		out.Width = first.Dimensions.Width
		out.Height = first.Dimensions.Height
		out.Pitch = float64(first.Grid.Pitch)
	}
	for _, sh := range sheets {
		out.Pages = append(out.Pages, r.page(sh))
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func (r jsonRenderer) page(sh notebook.Sheet) jsonPage {
	g := sh.Geometry
	p := jsonPage{
		ID:              string(sh.Page.ID),
		Number:          sh.Page.Number,
		Side:            string(sh.Page.Side),
		Title:           sh.Page.Title,
		Selected:        sh.Selected,
		Columns:         g.Columns,
		Rows:            g.Rows,
		GridWidth:       g.GridWidth,
		GridHeight:      g.GridHeight,
		OriginX:         g.OriginX,
		OriginY:         g.OriginY,
		AdjustedOriginX: g.AdjustedOriginX,
		Vertical:        nonNil(g.Vertical),
		Horizontal:      nonNil(g.Horizontal),
	}
	if b := g.Border; b != nil {
		p.Border = &jsonRect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	if gl := g.Glyph; gl != nil {
		p.Glyph = &jsonGlyph{X: gl.X, Y: gl.Y, FontSize: gl.FontSize, Text: strconv.Itoa(sh.Page.Number)}
	}
	if r.lines {
		for _, l := range g.Lines() {
			p.Lines = append(p.Lines, jsonLine{X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2})
		}
	}
	return p
}

func nonNil(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}
