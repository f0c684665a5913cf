package notebook

import (
	"context"
	"fmt"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/pages"
	"github.com/matzehuels/gridda/pkg/paper"
)

// Sheet is everything a renderer needs to draw one page.
type Sheet struct {
	Page       pages.Page
	Paper      paper.Size
	Dimensions paper.Dimensions
	Grid       grid.Config
	Background string
	Geometry   grid.Geometry
	Selected   bool
}

// Label is the caption shown above a page in previews, e.g. "Page 3 - Left".
func (sh Sheet) Label() string {
	return fmt.Sprintf("Page %d - %s", sh.Page.Number, sh.Page.Side)
}

// Compose lays out every page of s in order.
func Compose(ctx context.Context, s State) ([]Sheet, error) {
	dims, err := s.Dimensions()
	if err != nil {
		return nil, err
	}
	sheets := make([]Sheet, 0, len(s.pages))
	for _, pg := range s.pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sh, err := composePage(s, dims, pg)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sh)
	}
	return sheets, nil
}

// ComposePage lays out a single page of s.
func ComposePage(s State, id pages.ID) (Sheet, error) {
	pg, ok := s.Page(id)
	if !ok {
		return Sheet{}, errors.New(errors.ErrCodePageNotFound, "page %q not found", string(id))
	}
	dims, err := s.Dimensions()
	if err != nil {
		return Sheet{}, err
	}
	return composePage(s, dims, pg)
}

func composePage(s State, dims paper.Dimensions, pg pages.Page) (Sheet, error) {
	g, err := grid.Layout(dims, s.Grid, pg.Side)
	if err != nil {
		return Sheet{}, fmt.Errorf("page %d: %w", pg.Number, err)
	}
	return Sheet{
		Page:       pg,
		Paper:      s.Paper,
		Dimensions: dims,
		Grid:       s.Grid,
		Background: s.Background,
		Geometry:   g,
		Selected:   s.selection.Has(pg.ID),
	}, nil
}
