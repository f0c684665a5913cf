package paper

import (
	"strings"

	"github.com/matzehuels/gridda/pkg/errors"
)

// Size identifies a notebook trim size.
type Size string

const (
	A7             Size = "a7"
	A6             Size = "a6"
	A5             Size = "a5"
	B6             Size = "b6"
	B6Slim         Size = "b6-slim"
	B5             Size = "b5"
	B5Slim         Size = "b5-slim"
	FCCompact      Size = "fc-compact"
	Personal       Size = "personal"
	PersonalWide   Size = "personal-wide"
	Pocket         Size = "pocket"
	PocketPlus     Size = "pocket-plus"
	HalfLetter     Size = "half-letter"
	TNStandard     Size = "tn-standard"
	TNSPlus        Size = "tns-plus"
	TNPassport     Size = "tn-passport"
	HobonichiWeeks Size = "hobonichi-weeks"
)

// Dimensions is a physical page size in millimetres.
type Dimensions struct {
	Width  float64 `json:"width_mm" toml:"width_mm"`
	Height float64 `json:"height_mm" toml:"height_mm"`
}

var all = []Size{
	A7, A6, A5, B6, B6Slim, B5, B5Slim,
	FCCompact, Personal, PersonalWide, Pocket, PocketPlus,
	HalfLetter, TNStandard, TNSPlus, TNPassport, HobonichiWeeks,
}

// All returns every catalogued size in display order.
func All() []Size {
	out := make([]Size, len(all))
	copy(out, all)
	return out
}

// DimensionsOf returns the trim size of s.
func DimensionsOf(s Size) (Dimensions, error) {
	switch s {
	case A7:
		return Dimensions{74, 105}, nil
	case A6:
		return Dimensions{105, 148}, nil
	case A5:
		return Dimensions{148, 210}, nil
	case B6:
		return Dimensions{128, 182}, nil
	case B6Slim:
		return Dimensions{120, 170}, nil
	case B5:
		return Dimensions{176, 250}, nil
	case B5Slim:
		return Dimensions{182, 257}, nil
	case FCCompact:
		return Dimensions{108, 171}, nil
	case Personal:
		return Dimensions{95, 171}, nil
	case PersonalWide:
		return Dimensions{122, 171}, nil
	case Pocket:
		return Dimensions{81, 120}, nil
	case PocketPlus:
		return Dimensions{89, 140}, nil
	case HalfLetter:
		return Dimensions{140, 216}, nil
	case TNStandard:
		return Dimensions{110, 210}, nil
	case TNSPlus:
		// TN standard plus 5mm of width.
		return Dimensions{115, 210}, nil
	case TNPassport:
		return Dimensions{90, 130}, nil
	case HobonichiWeeks:
		return Dimensions{95, 190}, nil
	}
	return Dimensions{}, errors.New(errors.ErrCodeCatalogMiss, "paper size %q has no catalog entry", string(s))
}

// MustDimensions is like DimensionsOf but panics on a catalog miss.
func MustDimensions(s Size) Dimensions {
	d, err := DimensionsOf(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Label returns the human-readable name shown in pickers.
func (s Size) Label() string {
	switch s {
	case A7, A6, A5, B6, B5:
		return strings.ToUpper(string(s))
	case B6Slim:
		return "B6 Slim"
	case B5Slim:
		return "B5 Slim"
	case FCCompact:
		return "Franklin Covey Compact"
	case Personal:
		return "Personal"
	case PersonalWide:
		return "Personal Wide"
	case Pocket:
		return "Pocket"
	case PocketPlus:
		return "Pocket Plus"
	case HalfLetter:
		return "Half Letter"
	case TNStandard:
		return "Traveler's Notebook Standard"
	case TNSPlus:
		return "TNS Plus (TN Standard + 0.5cm width)"
	case TNPassport:
		return "Traveler's Notebook Passport"
	case HobonichiWeeks:
		return "Hobonichi Weeks"
	}
	return string(s)
}

func (s Size) String() string { return string(s) }

// Known reports whether s is in the catalog.
func (s Size) Known() bool {
	for _, k := range all {
		if k == s {
			return true
		}
	}
	return false
}

// Parse maps user input to a Size. Matching is case-insensitive and accepts
// underscores or spaces in place of dashes ("TN Standard" → tn-standard).
func Parse(s string) (Size, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	if size := Size(norm); size.Known() {
		return size, nil
	}
	return "", errors.New(errors.ErrCodeInvalidPaper, "unknown paper size %q", s)
}
