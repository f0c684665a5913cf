// Package grid computes the line geometry of a grid-paper page.
//
// # Overview
//
// [Layout] turns a paper size, a [Config] and a binding [binding.Side] into a
// [Geometry]: the column and row counts, the origin of the grid block, the
// x-offsets of every vertical line, the y-offsets of every horizontal line,
// and the optional border rectangle and page-number glyph position. All
// values are millimetres measured from the top-left corner of the page.
//
// The realised grid is always a whole number of pitches wide and tall. The
// remainder of the printable area becomes unused margin so that lines land on
// clean pitch boundaries:
//
//	columns = floor((width  - 2*margin - extra) / pitch)
//	rows    = floor((height - 2*margin)         / pitch)
//
// # Alignment
//
// The block is always centred vertically. Horizontally it depends on the
// [Alignment]:
//
//   - [Center] splits the leftover width evenly, identically for both sides.
//   - [Float] anchors the block to the binding-edge margin: left pages start at
//     the minimum margin, right pages end at width minus the minimum margin.
//
// When the extra margin is enabled a fixed [ExtraMargin] (10mm) is reserved on
// the side opposite the binding edge, shifting right-hand pages by that amount.
//
// # Errors
//
// Layout is pure and deterministic. Non-finite inputs, a non-positive pitch,
// a negative margin or a non-positive paper dimension are reported as
// INVALID_CONFIG errors with no partial result. A paper too small to hold a
// single cell is not an error: the geometry simply has zero columns and rows
// and no lines.
package grid
