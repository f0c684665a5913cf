package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pages"
	"github.com/matzehuels/gridda/pkg/paper"
	"github.com/matzehuels/gridda/pkg/render"
)

// notebookFlags are the settings shared by every command that builds a
// notebook. They override the loaded file only where set explicitly.
type notebookFlags struct {
	paper       string
	pitch       string
	margin      float64
	extraMargin bool
	align       string
	thickness   float64
	color       string
	border      bool
	numbers     bool
	startAtZero bool
	firstSide   string
	pages       int
	background  string
}

// addNotebookFlags registers the notebook flags on cmd. Defaults shown in
// help are those of a fresh notebook.
func addNotebookFlags(cmd *cobra.Command) *notebookFlags {
	def := notebook.Default()
	f := &notebookFlags{}

	fs := cmd.Flags()
	fs.StringVarP(&f.paper, "paper", "p", string(def.Paper), "paper size (see 'gridda papers')")
	fs.StringVar(&f.pitch, "pitch", def.Grid.Pitch.String(), "grid pitch: 2mm, 3mm, 3.94mm, 4mm, 5mm")
	fs.Float64Var(&f.margin, "margin", def.Grid.MinimumMargin, "minimum margin in mm")
	fs.BoolVar(&f.extraMargin, "extra-margin", def.Grid.ExtraMargin, "reserve a 10mm gutter opposite the binding edge")
	fs.StringVar(&f.align, "align", string(def.Grid.Alignment), "grid alignment: float, center")
	fs.Float64Var(&f.thickness, "thickness", def.Grid.LineThickness, "line thickness in mm")
	fs.StringVar(&f.color, "color", def.Grid.LineColor, "line colour (#rrggbb)")
	fs.BoolVar(&f.border, "border", def.Grid.ShowBorder, "draw a border around the grid")
	fs.BoolVar(&f.numbers, "numbers", def.Grid.ShowPageNumber, "print page numbers in the grid corner")
	fs.BoolVar(&f.startAtZero, "start-at-zero", def.Numbering.StartAtZero, "number pages from 0")
	fs.StringVar(&f.firstSide, "first-side", string(def.Numbering.FirstSide), "side of the first page: left, right")
	fs.IntVarP(&f.pages, "pages", "n", def.Len(), "number of pages")
	fs.StringVar(&f.background, "background", def.Background, "page colour (#rrggbb)")
	return f
}

// loadState reads the notebook file at path, or returns the default notebook
// when path is empty.
func loadState(path string) (notebook.State, error) {
	if path == "" {
		return notebook.Default(), nil
	}
	st, err := notebook.Load(path)
	if err != nil {
		return notebook.State{}, fmt.Errorf("load %s: %w", path, err)
	}
	return st, nil
}

// resolve loads path and applies the explicitly set flags on top.
func (f *notebookFlags) resolve(cmd *cobra.Command, path string) (notebook.State, error) {
	st, err := loadState(path)
	if err != nil {
		return st, err
	}
	return f.apply(cmd, st)
}

// apply overrides the fields of st whose flags were set on the command line.
func (f *notebookFlags) apply(cmd *cobra.Command, st notebook.State) (notebook.State, error) {
	changed := cmd.Flags().Changed
	var err error

	if changed("paper") {
		size, err := paper.Parse(f.paper)
		if err != nil {
			return st, err
		}
		if st, err = st.WithPaper(size); err != nil {
			return st, err
		}
	}

	g := st.Grid
	if changed("pitch") {
		if g.Pitch, err = grid.ParsePitch(f.pitch); err != nil {
			return st, err
		}
	}
	if changed("margin") {
		g.MinimumMargin = grid.ClampMargin(f.margin)
	}
	if changed("extra-margin") {
		g.ExtraMargin = f.extraMargin
	}
	if changed("align") {
		if g.Alignment, err = grid.ParseAlignment(f.align); err != nil {
			return st, err
		}
	}
	if changed("thickness") {
		g.LineThickness = grid.ClampThickness(f.thickness)
	}
	if changed("color") {
		if g.LineColor, err = render.Normalize(f.color); err != nil {
			return st, err
		}
	}
	if changed("border") {
		g.ShowBorder = f.border
	}
	if changed("numbers") {
		g.ShowPageNumber = f.numbers
	}
	if st, err = st.WithGrid(g); err != nil {
		return st, err
	}

	if changed("background") {
		bg, err := render.Normalize(f.background)
		if err != nil {
			return st, err
		}
		if st, err = st.WithBackground(bg); err != nil {
			return st, err
		}
	}

	if changed("start-at-zero") || changed("first-side") {
		policy := st.Numbering
		if changed("start-at-zero") {
			policy.StartAtZero = f.startAtZero
		}
		if changed("first-side") {
			if policy.FirstSide, err = binding.Parse(f.firstSide); err != nil {
				return st, err
			}
		}
		st = st.WithNumbering(policy)
	}

	if changed("pages") {
		if st, err = resize(st, f.pages); err != nil {
			return st, err
		}
	}
	return st, nil
}

// resize grows or truncates the page list to n pages, keeping existing pages
// and their titles.
func resize(st notebook.State, n int) (notebook.State, error) {
	if n < 0 {
		return st, errors.New(errors.ErrCodeInvalidInput, "--pages must be >= 0, got %d", n)
	}
	if err := pages.CheckCount(n); err != nil {
		return st, err
	}
	ps := st.Pages()
	if n <= len(ps) {
		return st.WithPages(ps[:n]), nil
	}
	for len(ps) < n {
		ps = append(ps, pages.Page{ID: pages.NewID()})
	}
	return st.WithPages(ps), nil
}
