package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gridda/pkg/errors"
)

// TitleTint is how far titles are blended from the line colour toward white.
const TitleTint = 0.6

var white = colorful.Color{R: 1, G: 1, B: 1}

// ParseColor decodes a "#rgb" or "#rrggbb" colour.
func ParseColor(hex string) (colorful.Color, error) {
	if err := errors.ValidateHexColor(hex); err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", hex)
	}
	return c, nil
}

// RGB255 returns the 0-255 channels of hex.
func RGB255(hex string) (r, g, b int, err error) {
	c, err := ParseColor(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8), nil
}

// Lighten blends hex toward white by amount in [0, 1] and returns the result
// as "#rrggbb".
func Lighten(hex string, amount float64) (string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return "", err
	}
	amount = min(max(amount, 0), 1)
	return c.BlendRgb(white, amount).Clamped().Hex(), nil
}

// Normalize expands hex to lower-case "#rrggbb".
func Normalize(hex string) (string, error) {
	c, err := ParseColor(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
