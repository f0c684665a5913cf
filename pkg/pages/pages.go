package pages

import (
	"github.com/google/uuid"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/errors"
)

// MaxPages bounds the length of a notebook.
const MaxPages = 1000

// CheckCount rejects notebooks longer than MaxPages.
func CheckCount(n int) error {
	if n > MaxPages {
		return errors.New(errors.ErrCodeInvalidConfig, "a notebook holds at most %d pages, got %d", MaxPages, n)
	}
	return nil
}

// ID identifies a page for its whole lifetime. IDs are never reused.
type ID string

// Page is one sheet of the notebook.
type Page struct {
	ID     ID
	Number int          // derived, see Renumber
	Side   binding.Side // derived, see Renumber
	Title  string
}

// Policy controls how pages are numbered and which side the first page sits on.
type Policy struct {
	StartAtZero bool
	FirstSide   binding.Side // zero value means binding.Left
}

// DefaultPolicy numbers from one with the first page on the left.
func DefaultPolicy() Policy {
	return Policy{FirstSide: binding.Left}
}

func (p Policy) firstSide() binding.Side {
	if p.FirstSide.Valid() {
		return p.FirstSide
	}
	return binding.Left
}

// NumberAt returns the display number of the page at zero-based index i.
func (p Policy) NumberAt(i int) int {
	if p.StartAtZero {
		return i
	}
	return i + 1
}

// SideAt returns the binding side of the page at zero-based index i.
func (p Policy) SideAt(i int) binding.Side {
	return binding.At(p.firstSide(), i)
}

// NewID returns a fresh page id.
func NewID() ID {
	return ID(uuid.NewString())
}

// Renumber returns a copy of ps with Number and Side recomputed from each
// page's index under p. IDs and titles are preserved. Renumber is idempotent.
func Renumber(ps []Page, p Policy) []Page {
	out := make([]Page, len(ps))
	for i, pg := range ps {
		pg.Number = p.NumberAt(i)
		pg.Side = p.SideAt(i)
		out[i] = pg
	}
	return out
}

// New returns n fresh, untitled pages numbered under p.
func New(n int, p Policy) []Page {
	ps := make([]Page, 0, max(n, 0))
	for i := 0; i < n; i++ {
		ps = append(ps, Page{ID: NewID()})
	}
	return Renumber(ps, p)
}

// Add appends one untitled page with a fresh id. The returned page carries
// the number and side of the new tail index; they stay valid only until the
// next policy or membership change.
func Add(ps []Page, p Policy) ([]Page, Page) {
	i := len(ps)
	pg := Page{
		ID:     NewID(),
		Number: p.NumberAt(i),
		Side:   p.SideAt(i),
	}
	out := make([]Page, 0, i+1)
	out = append(out, ps...)
	out = append(out, pg)
	return Renumber(out, p), pg
}

// Index returns the position of id in ps, or -1.
func Index(ps []Page, id ID) int {
	for i, pg := range ps {
		if pg.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the page with the given id.
func Find(ps []Page, id ID) (Page, bool) {
	if i := Index(ps, id); i >= 0 {
		return ps[i], true
	}
	return Page{}, false
}

// Remove deletes the page with the given id and renumbers the rest.
func Remove(ps []Page, id ID, p Policy) ([]Page, error) {
	i := Index(ps, id)
	if i < 0 {
		return nil, notFound(id)
	}
	out := make([]Page, 0, len(ps)-1)
	out = append(out, ps[:i]...)
	out = append(out, ps[i+1:]...)
	return Renumber(out, p), nil
}

// Move repositions the page with the given id to index to (clamped to the
// collection bounds) and renumbers.
func Move(ps []Page, id ID, to int, p Policy) ([]Page, error) {
	from := Index(ps, id)
	if from < 0 {
		return nil, notFound(id)
	}
	to = min(max(to, 0), len(ps)-1)

	out := make([]Page, 0, len(ps))
	out = append(out, ps[:from]...)
	out = append(out, ps[from+1:]...)
	out = append(out[:to], append([]Page{ps[from]}, out[to:]...)...)
	return Renumber(out, p), nil
}

// SetTitle returns a copy of ps with the title of page id replaced.
func SetTitle(ps []Page, id ID, title string) ([]Page, error) {
	i := Index(ps, id)
	if i < 0 {
		return nil, notFound(id)
	}
	if err := errors.ValidateTitle(title); err != nil {
		return nil, err
	}
	out := make([]Page, len(ps))
	copy(out, ps)
	out[i].Title = title
	return out, nil
}

func notFound(id ID) error {
	return errors.New(errors.ErrCodePageNotFound, "page %q not found", string(id))
}
