package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/render"
)

// HighlightColor outlines selected pages in previews.
const HighlightColor = "#2f80ed"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pixelWidth float64
	highlight  bool
	noTitle    bool
}

// WithPixelWidth sizes the root element in pixels instead of millimetres.
// The height follows the paper's aspect ratio.
func WithPixelWidth(px float64) SVGOption { return func(r *svgRenderer) { r.pixelWidth = px } }

// WithHighlight outlines the page if the sheet is selected.
func WithHighlight() SVGOption { return func(r *svgRenderer) { r.highlight = true } }

// WithoutTitle omits the page title.
func WithoutTitle() SVGOption { return func(r *svgRenderer) { r.noTitle = true } }

// RenderSVG draws one sheet.
func RenderSVG(sh notebook.Sheet, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := sh.Dimensions.Width, sh.Dimensions.Height
	width, height := num(w)+"mm", num(h)+"mm"
	if r.pixelWidth > 0 {
		width, height = num(r.pixelWidth), num(r.pixelWidth*h/w)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s" data-page-id="%s">`+"\n",
		width, height, num(w), num(h), escapeXML(string(sh.Page.ID)))
	fmt.Fprintf(&buf, `  <rect width="%s" height="%s" fill="%s"/>`+"\n", num(w), num(h), sh.Background)

	if !r.noTitle {
		renderTitleSVG(&buf, sh)
	}
	renderGridSVG(&buf, sh)
	renderBorderSVG(&buf, sh)
	renderGlyphSVG(&buf, sh)
	if r.highlight && sh.Selected {
		fmt.Fprintf(&buf, `  <rect class="selection" x="0.5" y="0.5" width="%s" height="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			num(w-1), num(h-1), HighlightColor)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGridSVG(buf *bytes.Buffer, sh notebook.Sheet) {
	lines := sh.Geometry.Lines()
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(buf, `  <g class="grid" stroke="%s" stroke-width="%s" stroke-linecap="square">`+"\n",
		sh.Grid.LineColor, num(sh.Grid.LineThickness))
	for _, l := range lines {
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", num(l.X1), num(l.Y1), num(l.X2), num(l.Y2))
	}
	buf.WriteString("  </g>\n")
}

func renderBorderSVG(buf *bytes.Buffer, sh notebook.Sheet) {
	b := sh.Geometry.Border
	if b == nil {
		return
	}
	fmt.Fprintf(buf, `  <rect class="border" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(b.X), num(b.Y), num(b.Width), num(b.Height), sh.Grid.LineColor, num(2*sh.Grid.LineThickness))
}

func renderGlyphSVG(buf *bytes.Buffer, sh notebook.Sheet) {
	gl := sh.Geometry.Glyph
	if gl == nil {
		return
	}
	fmt.Fprintf(buf, `  <text class="page-number" x="%s" y="%s" font-family="Helvetica, Arial, sans-serif" font-size="%s" text-anchor="middle" dominant-baseline="central" fill="%s">%d</text>`+"\n",
		num(gl.X), num(gl.Y), num(gl.FontSize), sh.Grid.LineColor, sh.Page.Number)
}

func renderTitleSVG(buf *bytes.Buffer, sh notebook.Sheet) {
	t, ok := titleOf(sh)
	if !ok {
		return
	}
	fmt.Fprintf(buf, `  <text class="title" x="%s" y="%s" font-family="Helvetica, Arial, sans-serif" font-size="%s" fill="%s">%s</text>`+"\n",
		num(t.x), num(t.y), num(t.fontSize), t.color, escapeXML(sh.Page.Title))
}

// titlePlacement is the baseline-left anchor of a page title, in millimetres.
type titlePlacement struct {
	x, y     float64
	fontSize float64
	color    string
}

// titleOf places the title in the top margin, left-aligned with the grid.
// Pages without a title or without a grid get none.
func titleOf(sh notebook.Sheet) (titlePlacement, bool) {
	g := sh.Geometry
	if sh.Page.Title == "" || g.Empty() {
		return titlePlacement{}, false
	}
	fs := math.Min(g.Pitch, g.OriginY*0.6)
	if fs <= 0 {
		return titlePlacement{}, false
	}
	color, err := render.Lighten(sh.Grid.LineColor, render.TitleTint)
	if err != nil {
		color = sh.Grid.LineColor
	}
	return titlePlacement{
		x:        g.AdjustedOriginX,
		y:        g.OriginY - fs*0.4,
		fontSize: fs,
		color:    color,
	}, true
}

// num formats a millimetre value with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
