package pages

import (
	"reflect"
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	var s Selection
	s = s.Toggle("a")
	if !s.Has("a") {
		t.Error("Toggle should select an unselected id")
	}
	s2 := s.Toggle("a")
	if s2.Has("a") {
		t.Error("Toggle should deselect a selected id")
	}
	if !s.Has("a") {
		t.Error("Toggle must not mutate the receiver")
	}
}

func TestSelectionSelectDeselect(t *testing.T) {
	s := NewSelection("a", "b", "a")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.Select("b").Len(); got != 2 {
		t.Errorf("Select of existing id changed Len to %d", got)
	}
	s = s.Deselect("a")
	if !reflect.DeepEqual(s.IDs(), []ID{"b"}) {
		t.Errorf("IDs() = %v, want [b]", s.IDs())
	}
	if got := s.Deselect("zz").Len(); got != 1 {
		t.Errorf("Deselect of missing id changed Len to %d", got)
	}
}

func TestSelectAllAndClear(t *testing.T) {
	ps := fixture("a", "b", "c")
	s := SelectAll(ps)
	if !reflect.DeepEqual(s.IDs(), []ID{"a", "b", "c"}) {
		t.Errorf("SelectAll IDs = %v", s.IDs())
	}
	if s.Clear().Len() != 0 {
		t.Error("Clear should empty the selection")
	}
	if s.Len() != 3 {
		t.Error("Clear must not mutate the receiver")
	}
}

func TestSelectionPrune(t *testing.T) {
	s := NewSelection("a", "b", "gone")
	got := s.Prune(fixture("a", "b"))
	if !reflect.DeepEqual(got.IDs(), []ID{"a", "b"}) {
		t.Errorf("Prune IDs = %v, want [a b]", got.IDs())
	}
}

func TestSelectionIDsIsCopy(t *testing.T) {
	s := NewSelection("a")
	ids := s.IDs()
	ids[0] = "mutated"
	if !s.Has("a") {
		t.Error("IDs() should return a copy")
	}
}
