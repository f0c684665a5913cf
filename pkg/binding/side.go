// Package binding names the two leaves of a bound notebook spread.
//
// A page's [Side] decides which edge counts as the binding edge: the grid
// anchors to it under float alignment and the extra gutter margin is reserved
// away from it. Both the grid layout and the page sequencer use this type, so
// it lives in its own leaf package.
package binding

import (
	"strings"

	"github.com/matzehuels/gridda/pkg/errors"
)

// Side is the left or right leaf of a spread.
type Side string

const (
	Left  Side = "Left"
	Right Side = "Right"
)

// Opposite returns the facing side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Valid reports whether s is Left or Right.
func (s Side) Valid() bool { return s == Left || s == Right }

func (s Side) String() string { return string(s) }

// Parse maps user input ("left", "R", ...) to a Side.
func Parse(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid side %q (must be 'left' or 'right')", s)
}

// At returns the side of the page at zero-based index i in a sequence whose
// first page sits on first. Sides strictly alternate.
func At(first Side, i int) Side {
	if i%2 == 0 {
		return first
	}
	return first.Opposite()
}
