// Package paper is the catalog of notebook trim sizes.
//
// Each [Size] is a closed identifier ("a5", "tn-standard", ...) that maps to a
// fixed [Dimensions] pair in millimetres:
//
//	d, err := paper.DimensionsOf(paper.A5)
//	// d.Width == 148, d.Height == 210
//
// The table is fixed at compile time. A [Size] outside the enumeration is a
// programming defect and [DimensionsOf] reports it as a CATALOG_MISS error;
// [MustDimensions] panics instead. User input should go through [Parse], which
// rejects unknown names with INVALID_PAPER before they reach the catalog.
package paper
