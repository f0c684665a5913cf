package sink

import (
	"context"

	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/render"
)

// PNGOption configures RenderPNG.
type PNGOption func(*pngConfig)

type pngConfig struct {
	scale   float64
	svgOpts []SVGOption
}

// WithScale sets pixels per millimetre. The default is render.DefaultPNGScale.
func WithScale(s float64) PNGOption {
	return func(c *pngConfig) { c.scale = s }
}

// WithPNGSVGOptions forwards opts to the SVG pass.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(c *pngConfig) { c.svgOpts = append(c.svgOpts, opts...) }
}

// RenderPNG rasterises one sheet. The SVG is emitted at one user unit per
// millimetre so the scale maps directly to pixels per millimetre.
func RenderPNG(ctx context.Context, sh notebook.Sheet, opts ...PNGOption) ([]byte, error) {
	c := pngConfig{scale: render.DefaultPNGScale}
	for _, opt := range opts {
		opt(&c)
	}
	svg := RenderSVG(sh, append([]SVGOption{WithPixelWidth(sh.Dimensions.Width)}, c.svgOpts...)...)
	return render.ToPNG(ctx, svg, c.scale)
}
