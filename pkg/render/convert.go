package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/gridda/pkg/errors"
)

// DefaultPNGScale renders one SVG millimetre unit as this many pixels.
const DefaultPNGScale = 4.0

const rsvgBinary = "rsvg-convert"

const rsvgInstallHint = `PNG export needs rsvg-convert from librsvg:
  macOS:  brew install librsvg
  Linux:  apt install librsvg2-bin`

// ToPNG rasterises svg with rsvg-convert, zoomed by scale. A non-positive
// scale falls back to DefaultPNGScale. The child process is killed when ctx
// is cancelled.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultPNGScale
	}
	path, err := exec.LookPath(rsvgBinary)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s", rsvgInstallHint)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--format", "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// HasRSVG reports whether rsvg-convert is on PATH.
func HasRSVG() bool {
	_, err := exec.LookPath(rsvgBinary)
	return err == nil
}
