package sink

import (
	"context"
	"testing"

	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/paper"
)

// testSheets composes an a5 notebook with border and page numbers enabled.
func testSheets(t *testing.T, n int, edit func(notebook.State) notebook.State) []notebook.Sheet {
	t.Helper()
	s := notebook.Default()
	c := grid.DefaultConfig()
	c.ShowBorder = true
	c.ShowPageNumber = true
	s, err := s.WithGrid(c)
	if err != nil {
		t.Fatal(err)
	}
	for s.Len() < n {
		s, _, _ = s.AddPage()
	}
	if edit != nil {
		s = edit(s)
	}
	sheets, err := notebook.Compose(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	return sheets
}

func degenerateSheet(t *testing.T) notebook.Sheet {
	t.Helper()
	return testSheets(t, 1, func(s notebook.State) notebook.State {
		s, _ = s.WithPaper(paper.A7)
		c := s.Grid
		c.MinimumMargin = 40
		s, err := s.WithGrid(c)
		if err != nil {
			t.Fatal(err)
		}
		return s
	})[0]
}
