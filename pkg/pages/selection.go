package pages

import "slices"

// Selection is an ordered set of page ids. It is a value type: every method
// returns a new Selection and leaves the receiver unchanged.
type Selection struct {
	ids []ID
}

// NewSelection returns a selection holding ids, duplicates dropped.
func NewSelection(ids ...ID) Selection {
	var s Selection
	for _, id := range ids {
		s = s.Select(id)
	}
	return s
}

// SelectAll returns a selection of every page in ps.
func SelectAll(ps []Page) Selection {
	ids := make([]ID, len(ps))
	for i, pg := range ps {
		ids[i] = pg.ID
	}
	return NewSelection(ids...)
}

// Has reports whether id is selected.
func (s Selection) Has(id ID) bool { return slices.Contains(s.ids, id) }

// Len returns the number of selected ids.
func (s Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []ID { return slices.Clone(s.ids) }

// Select adds id.
func (s Selection) Select(id ID) Selection {
	if s.Has(id) {
		return s
	}
	return Selection{ids: append(slices.Clone(s.ids), id)}
}

// Deselect removes id.
func (s Selection) Deselect(id ID) Selection {
	return Selection{ids: slices.DeleteFunc(slices.Clone(s.ids), func(x ID) bool { return x == id })}
}

// Toggle selects id if it is not selected and deselects it otherwise.
func (s Selection) Toggle(id ID) Selection {
	if s.Has(id) {
		return s.Deselect(id)
	}
	return s.Select(id)
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection { return Selection{} }

// Prune drops ids that no longer belong to ps.
func (s Selection) Prune(ps []Page) Selection {
	return Selection{ids: slices.DeleteFunc(slices.Clone(s.ids), func(id ID) bool { return Index(ps, id) < 0 })}
}
