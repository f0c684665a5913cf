// Package sink provides output format renderers for composed notebook pages.
//
// # Overview
//
// A "sink" transforms one or more [notebook.Sheet] values into a final output
// format. This package provides renderers for:
//
//   - SVG: one page per document, millimetre units, used by the preview
//   - PDF: every page in one print-ready document at true trim size
//   - PNG: raster image of a page (requires rsvg-convert)
//   - JSON: geometry export for external tools
//
// # SVG Output
//
// [RenderSVG] draws, in order: the page background, the title, the grid
// lines, the optional border (twice the line stroke), the optional page
// number glyph and, when requested, a selection outline.
//
//	svg := sink.RenderSVG(sheet,
//	    sink.WithPixelWidth(320),
//	    sink.WithHighlight(),
//	)
//
// # PDF Output
//
// [RenderPDF] writes every sheet as its own PDF page using fpdf. Coordinates
// are the layout's millimetres unchanged; only font sizes are converted to
// points.
//
//	pdf, err := sink.RenderPDF(sheets, sink.WithDocumentTitle("Bullet journal"))
//
// # PNG Output
//
// [RenderPNG] renders the SVG of a sheet and converts it via [render.ToPNG]:
//
//	png, err := sink.RenderPNG(ctx, sheet, sink.WithScale(4))
//
// This requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [notebook.Sheet]: github.com/matzehuels/gridda/pkg/notebook.Sheet
// [render.ToPNG]: github.com/matzehuels/gridda/pkg/render.ToPNG
package sink
