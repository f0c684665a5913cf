package notebook

import (
	"slices"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/pages"
	"github.com/matzehuels/gridda/pkg/paper"
)

// DefaultBackground is the page colour of a fresh notebook.
const DefaultBackground = "#ffffff"

// State is one snapshot of a notebook. The zero value is not usable; start
// from Default or Decode.
type State struct {
	Paper      paper.Size
	Grid       grid.Config
	Numbering  pages.Policy
	Background string

	pages     []pages.Page
	selection pages.Selection
}

// Default returns an a5 notebook with one page and the default grid.
func Default() State {
	policy := pages.DefaultPolicy()
	return State{
		Paper:      paper.A5,
		Grid:       grid.DefaultConfig(),
		Numbering:  policy,
		Background: DefaultBackground,
		pages:      pages.New(1, policy),
	}
}

// Pages returns a copy of the page sequence in order.
func (s State) Pages() []pages.Page { return slices.Clone(s.pages) }

// Len returns the number of pages.
func (s State) Len() int { return len(s.pages) }

// Page looks up a page by id.
func (s State) Page(id pages.ID) (pages.Page, bool) { return pages.Find(s.pages, id) }

// Selection returns the current selection.
func (s State) Selection() pages.Selection { return s.selection }

// Dimensions returns the trim size of the configured paper.
func (s State) Dimensions() (paper.Dimensions, error) { return paper.DimensionsOf(s.Paper) }

// WithPaper switches the paper size.
func (s State) WithPaper(size paper.Size) (State, error) {
	if !size.Known() {
		return s, errors.New(errors.ErrCodeInvalidPaper, "unknown paper size %q", string(size))
	}
	s.Paper = size
	return s, nil
}

// WithGrid replaces the grid configuration. The new configuration must pass
// grid.Config.Validate.
func (s State) WithGrid(c grid.Config) (State, error) {
	if err := c.Validate(); err != nil {
		return s, err
	}
	s.Grid = c
	return s, nil
}

// WithBackground sets the page colour.
func (s State) WithBackground(color string) (State, error) {
	if err := errors.ValidateHexColor(color); err != nil {
		return s, err
	}
	s.Background = color
	return s, nil
}

// WithNumbering replaces the numbering policy and renumbers every page.
func (s State) WithNumbering(p pages.Policy) State {
	s.Numbering = p
	s.pages = pages.Renumber(s.pages, p)
	return s
}

// WithPages replaces the page sequence. Pages are renumbered under the current
// policy and the selection is pruned to the surviving ids.
func (s State) WithPages(ps []pages.Page) State {
	s.pages = pages.Renumber(ps, s.Numbering)
	s.selection = s.selection.Prune(s.pages)
	return s
}

// AddPage appends an untitled page. It fails once the notebook holds
// pages.MaxPages.
func (s State) AddPage() (State, pages.Page, error) {
	if err := pages.CheckCount(len(s.pages) + 1); err != nil {
		return s, pages.Page{}, err
	}
	ps, added := pages.Add(s.pages, s.Numbering)
	s.pages = ps
	return s, added, nil
}

// RemovePage deletes a page and drops it from the selection.
func (s State) RemovePage(id pages.ID) (State, error) {
	ps, err := pages.Remove(s.pages, id, s.Numbering)
	if err != nil {
		return s, err
	}
	s.pages = ps
	s.selection = s.selection.Deselect(id)
	return s, nil
}

// MovePage moves a page to index to.
func (s State) MovePage(id pages.ID, to int) (State, error) {
	ps, err := pages.Move(s.pages, id, to, s.Numbering)
	if err != nil {
		return s, err
	}
	s.pages = ps
	return s, nil
}

// SetTitle retitles a page.
func (s State) SetTitle(id pages.ID, title string) (State, error) {
	ps, err := pages.SetTitle(s.pages, id, title)
	if err != nil {
		return s, err
	}
	s.pages = ps
	return s, nil
}

// ToggleSelect flips the selection state of a page.
func (s State) ToggleSelect(id pages.ID) (State, error) {
	if pages.Index(s.pages, id) < 0 {
		return s, errors.New(errors.ErrCodePageNotFound, "page %q not found", string(id))
	}
	s.selection = s.selection.Toggle(id)
	return s, nil
}

// SelectAll selects every page.
func (s State) SelectAll() State {
	s.selection = pages.SelectAll(s.pages)
	return s
}

// ClearSelection empties the selection.
func (s State) ClearSelection() State {
	s.selection = s.selection.Clear()
	return s
}

// Validate checks every user-editable field of s.
func (s State) Validate() error {
	if !s.Paper.Known() {
		return errors.New(errors.ErrCodeInvalidPaper, "unknown paper size %q", string(s.Paper))
	}
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if !s.Numbering.FirstSide.Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid first side %q", string(s.Numbering.FirstSide))
	}
	return errors.ValidateHexColor(s.Background)
}
