package notebook

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/pages"
	"github.com/matzehuels/gridda/pkg/paper"
)

// File is the serialised form of a State, shared by TOML config files and the
// JSON API.
type File struct {
	Paper      string        `toml:"paper" json:"paper"`
	Background string        `toml:"background,omitempty" json:"background,omitempty"`
	Grid       GridFile      `toml:"grid" json:"grid"`
	Numbering  NumberingFile `toml:"numbering" json:"numbering"`
	PageCount  int           `toml:"pages,omitempty" json:"page_count,omitempty"`
	Pages      []PageFile    `toml:"page,omitempty" json:"pages,omitempty"`
	Selected   []string      `toml:"selected,omitempty" json:"selected,omitempty"`
}

// GridFile is the [grid] table.
type GridFile struct {
	Pitch          float64 `toml:"pitch_mm" json:"pitch_mm"`
	MinimumMargin  float64 `toml:"minimum_margin_mm" json:"minimum_margin_mm"`
	ExtraMargin    bool    `toml:"extra_margin" json:"extra_margin"`
	Alignment      string  `toml:"alignment" json:"alignment"`
	LineThickness  float64 `toml:"line_thickness_mm" json:"line_thickness_mm"`
	LineColor      string  `toml:"line_color" json:"line_color"`
	ShowBorder     bool    `toml:"show_border" json:"show_border"`
	ShowPageNumber bool    `toml:"show_page_number" json:"show_page_number"`
}

// NumberingFile is the [numbering] table.
type NumberingFile struct {
	StartAtZero bool   `toml:"start_at_zero" json:"start_at_zero"`
	FirstSide   string `toml:"first_side" json:"first_side"`
}

// PageFile is one [[page]] entry. An empty ID is replaced by a fresh one.
// Number and Side are written for readability and ignored on input.
type PageFile struct {
	ID     string `toml:"id,omitempty" json:"id,omitempty"`
	Title  string `toml:"title,omitempty" json:"title,omitempty"`
	Number int    `toml:"number,omitempty" json:"number"`
	Side   string `toml:"side,omitempty" json:"side,omitempty"`
}

// DefaultFile returns the File of Default without its page list. Decoders
// fill a DefaultFile so that omitted keys keep their default value.
func DefaultFile() File {
	f := FileOf(Default())
	f.Pages = nil
	f.Selected = nil
	return f
}

// FileOf converts s to its serialised form.
func FileOf(s State) File {
	f := File{
		Paper:      string(s.Paper),
		Background: s.Background,
		Grid: GridFile{
			Pitch:          float64(s.Grid.Pitch),
			MinimumMargin:  s.Grid.MinimumMargin,
			ExtraMargin:    s.Grid.ExtraMargin,
			Alignment:      string(s.Grid.Alignment),
			LineThickness:  s.Grid.LineThickness,
			LineColor:      s.Grid.LineColor,
			ShowBorder:     s.Grid.ShowBorder,
			ShowPageNumber: s.Grid.ShowPageNumber,
		},
		Numbering: NumberingFile{
			StartAtZero: s.Numbering.StartAtZero,
			FirstSide:   strings.ToLower(string(s.Numbering.FirstSide)),
		},
	}
	for _, pg := range s.pages {
		f.Pages = append(f.Pages, PageFile{
			ID:     string(pg.ID),
			Title:  pg.Title,
			Number: pg.Number,
			Side:   string(pg.Side),
		})
	}
	for _, id := range s.selection.IDs() {
		f.Selected = append(f.Selected, string(id))
	}
	return f
}

// State validates f and converts it to a State.
func (f File) State() (State, error) {
	size, err := paper.Parse(f.Paper)
	if err != nil {
		return State{}, err
	}
	align, err := grid.ParseAlignment(f.Grid.Alignment)
	if err != nil {
		return State{}, err
	}
	first := binding.Left
	if f.Numbering.FirstSide != "" {
		if first, err = binding.Parse(f.Numbering.FirstSide); err != nil {
			return State{}, err
		}
	}
	background := f.Background
	if background == "" {
		background = DefaultBackground
	}

	s := State{
		Paper: size,
		Grid: grid.Config{
			Pitch:          grid.Pitch(f.Grid.Pitch),
			MinimumMargin:  f.Grid.MinimumMargin,
			ExtraMargin:    f.Grid.ExtraMargin,
			Alignment:      align,
			LineThickness:  f.Grid.LineThickness,
			LineColor:      f.Grid.LineColor,
			ShowBorder:     f.Grid.ShowBorder,
			ShowPageNumber: f.Grid.ShowPageNumber,
		},
		Numbering:  pages.Policy{StartAtZero: f.Numbering.StartAtZero, FirstSide: first},
		Background: background,
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}

	ps, err := f.pageList()
	if err != nil {
		return State{}, err
	}
	s = s.WithPages(ps)

	ids := make([]pages.ID, len(f.Selected))
	for i, id := range f.Selected {
		ids[i] = pages.ID(id)
	}
	s.selection = pages.NewSelection(ids...).Prune(s.pages)
	return s, nil
}

func (f File) pageList() ([]pages.Page, error) {
	if len(f.Pages) > 0 && f.PageCount > 0 && f.PageCount != len(f.Pages) {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"pages = %d conflicts with %d [[page]] entries", f.PageCount, len(f.Pages))
	}
	if f.PageCount < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "pages must be >= 0, got %d", f.PageCount)
	}
	if err := pages.CheckCount(max(f.PageCount, len(f.Pages))); err != nil {
		return nil, err
	}
	if len(f.Pages) == 0 {
		n := f.PageCount
		if n == 0 {
			n = 1
		}
		return pages.New(n, pages.DefaultPolicy()), nil
	}

	seen := make(map[pages.ID]bool, len(f.Pages))
	ps := make([]pages.Page, len(f.Pages))
	for i, pf := range f.Pages {
		id := pages.ID(pf.ID)
		if id == "" {
			id = pages.NewID()
		}
		if seen[id] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate page id %q", pf.ID)
		}
		seen[id] = true
		if err := errors.ValidateTitle(pf.Title); err != nil {
			return nil, err
		}
		ps[i] = pages.Page{ID: id, Title: pf.Title}
	}
	return ps, nil
}

// Decode reads a TOML notebook description. Unknown keys are rejected.
func Decode(r io.Reader) (State, error) {
	f := DefaultFile()
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return State{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse notebook config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return State{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return f.State()
}

// Load reads a TOML notebook description from path.
func Load(path string) (State, error) {
	fh, err := os.Open(path)
	if err != nil {
		return State{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer fh.Close()
	return Decode(fh)
}

// Encode writes s as TOML.
func Encode(w io.Writer, s State) error {
	if err := toml.NewEncoder(w).Encode(FileOf(s)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode notebook config")
	}
	return nil
}

// Save writes s as TOML to path.
func Save(path string, s State) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
