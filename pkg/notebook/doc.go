// Package notebook holds the complete editable state of a grid notebook and
// turns it into per-page drawing instructions.
//
// [State] is an immutable snapshot: paper size, grid configuration, numbering
// policy, background colour, the page sequence and the current selection.
// Every edit returns a new State, so a presentation layer can swap snapshots
// wholesale and hand the old one to a concurrent renderer without locking.
//
// [Compose] runs the grid layout fresh for every page of a State. Nothing is
// cached between calls; the geometry is a pure function of the snapshot.
//
// # Config files
//
// A notebook can be described in TOML:
//
//	paper = "a5"
//	background = "#fffdf5"
//
//	[grid]
//	pitch_mm = 5.0
//	minimum_margin_mm = 4.0
//	alignment = "float"
//	extra_margin = true
//	show_page_number = true
//
//	[numbering]
//	start_at_zero = false
//	first_side = "left"
//
//	[[page]]
//	title = "Index"
//
//	[[page]]
//	title = "Habits"
//
// Instead of [[page]] tables, "pages = 12" creates that many untitled pages.
// Keys left out take their value from [Default]. The same [File] schema is
// used as the JSON body of the preview server's state endpoint.
package notebook
