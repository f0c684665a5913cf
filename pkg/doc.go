// Package pkg holds the libraries behind gridda, a generator for printable
// grid notebook pages.
//
// # Overview
//
// A notebook is a paper size, a grid configuration, a numbering policy and an
// ordered list of pages. Rendering turns each page into a sheet whose grid is
// laid out for the side of the spread it falls on:
//
//	[paper] catalog ──┐
//	[grid] config ────┼──→ [notebook] State ──→ Compose ──→ []Sheet
//	[pages] sequence ─┘                                        ↓
//	                                            [render/sink] SVG, PDF, PNG, JSON
//
// The [pipeline] package wires composition and rendering together with
// logging and [observability] hooks, and is what the CLI and the preview
// server call.
//
// # Packages
//
//   - [paper]: catalogued trim sizes in millimetres
//   - [binding]: Left and Right sides of a spread
//   - [grid]: the layout engine and its configuration
//   - [pages]: numbering, sides and selection of the page sequence
//   - [notebook]: immutable notebook state and its TOML file format
//   - [render] and [render/sink]: colour handling and output formats
//   - [pipeline]: compose and render with stats
//   - [errors]: coded errors shared by all packages
//
// # Quick Start
//
//	st := notebook.Default()
//	st, _, _ = st.AddPage()
//	res, err := pipeline.NewRunner(logger).Execute(ctx, st, pipeline.Options{
//	    Formats: []string{pipeline.FormatPDF},
//	})
//
// [paper]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/paper
// [binding]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/binding
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/grid
// [pages]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/pages
// [notebook]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/notebook
// [render]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridda/pkg/errors
package pkg
