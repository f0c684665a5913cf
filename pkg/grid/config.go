package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/gridda/pkg/errors"
)

// ExtraMargin is the gutter reserve, in millimetres, inserted opposite the
// binding edge when Config.ExtraMargin is set.
const ExtraMargin = 10.0

// Line thickness bounds and default, in millimetres.
const (
	MinLineThickness     = 0.01
	MaxLineThickness     = 1.0
	DefaultLineThickness = 0.1
)

// DefaultMinimumMargin is the minimum margin used when none is configured.
const DefaultMinimumMargin = 4.0

// glyphScale sizes the page-number glyph relative to the pitch.
const glyphScale = 0.6

// Pitch is the spacing between adjacent grid lines, in millimetres.
type Pitch float64

// Supported pitches.
const (
	Pitch2mm   Pitch = 2
	Pitch3mm   Pitch = 3
	Pitch394mm Pitch = 3.94 // 0.155 inch, common in Japanese notebooks
	Pitch4mm   Pitch = 4
	Pitch5mm   Pitch = 5
)

// DefaultPitch is the pitch a fresh notebook starts with.
const DefaultPitch = Pitch5mm

var pitches = []Pitch{Pitch2mm, Pitch3mm, Pitch394mm, Pitch4mm, Pitch5mm}

// Pitches returns the supported pitches in ascending order.
func Pitches() []Pitch {
	out := make([]Pitch, len(pitches))
	copy(out, pitches)
	return out
}

// Supported reports whether p is one of the selectable pitches.
func (p Pitch) Supported() bool {
	for _, s := range pitches {
		if s == p {
			return true
		}
	}
	return false
}

// String formats p the way the pitch picker labels it, e.g. "3.94mm".
func (p Pitch) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "mm"
}

// ParsePitch parses "5mm", "5" or "3.94mm". Only supported pitches are accepted.
func ParsePitch(s string) (Pitch, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "mm")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidPitch, err, "invalid pitch %q", s)
	}
	p := Pitch(f)
	if !p.Supported() {
		return 0, errors.New(errors.ErrCodeInvalidPitch, "unsupported pitch %q (must be one of %s)", s, pitchList())
	}
	return p, nil
}

func pitchList() string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

// Alignment selects how the grid block is placed horizontally.
type Alignment string

const (
	// Center splits the leftover width evenly regardless of side.
	Center Alignment = "center"
	// Float anchors the block to the binding-edge margin.
	Float Alignment = "float"
)

// Valid reports whether a is a known alignment.
func (a Alignment) Valid() bool { return a == Center || a == Float }

// ParseAlignment maps user input to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid alignment %q (must be 'center' or 'float')", s)
	}
	return a, nil
}

// Config is the grid part of a notebook configuration. It is a value type:
// callers replace it wholesale on every edit.
type Config struct {
	Pitch          Pitch
	MinimumMargin  float64 // millimetres, ≥ 0
	ExtraMargin    bool    // reserve ExtraMargin opposite the binding edge
	Alignment      Alignment
	LineThickness  float64 // millimetres, in [MinLineThickness, MaxLineThickness]
	LineColor      string  // hex colour
	ShowBorder     bool
	ShowPageNumber bool
}

// DefaultConfig returns the configuration a fresh notebook starts with.
func DefaultConfig() Config {
	return Config{
		Pitch:         DefaultPitch,
		MinimumMargin: DefaultMinimumMargin,
		Alignment:     Float,
		LineThickness: DefaultLineThickness,
		LineColor:     "#000000",
	}
}

// Validate checks c against what the configuration surface allows. Layout
// itself accepts any positive pitch; Validate additionally insists on a
// supported pitch, a line thickness inside its bounds and a hex colour.
func (c Config) Validate() error {
	if !c.Pitch.Supported() {
		return errors.New(errors.ErrCodeInvalidPitch, "unsupported pitch %v (must be one of %s)", float64(c.Pitch), pitchList())
	}
	if !finite(c.MinimumMargin) || c.MinimumMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "minimum margin must be a finite value >= 0, got %v", c.MinimumMargin)
	}
	if !c.Alignment.Valid() {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid alignment %q", c.Alignment)
	}
	if !finite(c.LineThickness) || c.LineThickness < MinLineThickness || c.LineThickness > MaxLineThickness {
		return errors.New(errors.ErrCodeInvalidConfig, "line thickness must be in [%g, %g] mm, got %v",
			MinLineThickness, MaxLineThickness, c.LineThickness)
	}
	return errors.ValidateHexColor(c.LineColor)
}

// ClampMargin clamps a user-entered margin to ≥ 0. NaN passes through so that
// Layout can reject it.
func ClampMargin(m float64) float64 {
	if m < 0 {
		return 0
	}
	return m
}

// ClampThickness clamps a user-entered line thickness to its bounds.
func ClampThickness(t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	return math.Min(math.Max(t, MinLineThickness), MaxLineThickness)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Describe renders c as a one-line summary for logs.
func (c Config) Describe() string {
	s := fmt.Sprintf("%s pitch, %gmm margin, %s", c.Pitch, c.MinimumMargin, c.Alignment)
	if c.ExtraMargin {
		s += ", extra margin"
	}
	return s
}
