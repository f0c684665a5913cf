// Package render holds the helpers shared by the output sinks.
//
// # Colours
//
// Colours are configured as CSS hex strings. [ParseColor] validates and
// decodes them, [RGB255] splits them into the 0-255 channels the PDF writer
// wants, and [Lighten] blends a colour toward white for faint decorations
// such as page titles.
//
// # Format Conversion
//
// [ToPNG] rasterises any SVG using the external rsvg-convert tool (from
// librsvg):
//
//	svg := sink.RenderSVG(sheet)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// The drawing itself lives in [sink].
//
// [sink]: github.com/matzehuels/gridda/pkg/render/sink
package render
