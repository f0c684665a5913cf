package paper_test

import (
	"fmt"

	"github.com/matzehuels/gridda/pkg/paper"
)

func ExampleDimensionsOf() {
	d, err := paper.DimensionsOf(paper.A5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s: %gx%g mm\n", paper.A5.Label(), d.Width, d.Height)
	// Output:
	// A5: 148x210 mm
}

func ExampleParse() {
	s, err := paper.Parse("TN Standard")
	if err != nil {
		panic(err)
	}
	fmt.Println(s, paper.MustDimensions(s).Width)
	// Output:
	// tn-standard 110
}
