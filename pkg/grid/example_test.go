package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridda/pkg/binding"
	"github.com/matzehuels/gridda/pkg/grid"
	"github.com/matzehuels/gridda/pkg/paper"
)

func ExampleLayout() {
	cfg := grid.DefaultConfig() // 5mm pitch, 4mm margin, float alignment

	g, err := grid.Layout(paper.MustDimensions(paper.A5), cfg, binding.Left)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d x %d cells, %gx%g mm, origin (%g, %g)\n",
		g.Columns, g.Rows, g.GridWidth, g.GridHeight, g.AdjustedOriginX, g.OriginY)
	// Output:
	// 28 x 40 cells, 140x200 mm, origin (4, 5)
}

func ExampleLayout_extraMargin() {
	cfg := grid.DefaultConfig()
	cfg.ExtraMargin = true

	d := paper.MustDimensions(paper.A5)
	for _, side := range []binding.Side{binding.Left, binding.Right} {
		g, _ := grid.Layout(d, cfg, side)
		fmt.Printf("%s: x from %g to %g\n", side, g.AdjustedOriginX, g.AdjustedOriginX+g.GridWidth)
	}
	// Output:
	// Left: x from 4 to 134
	// Right: x from 14 to 144
}
