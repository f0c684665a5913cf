// Package pipeline turns a [notebook.State] into output files.
//
// A run composes every page (or only the selected ones) and then renders
// the sheets once per requested format: one PDF or JSON document for the
// whole notebook, one SVG or PNG per page. The CLI and the preview server
// both go through [Runner], so the same state always yields the same bytes.
//
//	res, err := pipeline.NewRunner(logger).Execute(ctx, st, pipeline.Options{
//		Formats: []string{pipeline.FormatPDF, pipeline.FormatSVG},
//	})
//	for _, a := range res.Artifacts {
//		os.WriteFile(a.Name, a.Data, 0o644)
//	}
//
// [notebook.State]: github.com/matzehuels/gridda/pkg/notebook.State
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/render"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options contains all configuration for one pipeline run.
type Options struct {
	Formats      []string `json:"formats,omitempty"`
	SelectedOnly bool     `json:"selected_only,omitempty"` // render only the selected pages
	PNGScale     float64  `json:"png_scale,omitempty"`     // pixels per millimetre
	Title        string   `json:"title,omitempty"`         // PDF document title
	NoTitles     bool     `json:"no_titles,omitempty"`     // leave page titles off every sheet

	// Logger overrides Runner.Logger for this run.
	Logger *log.Logger `json:"-"`
}

// Artifact is one rendered output file.
type Artifact struct {
	Name   string // file name, e.g. "notebook.pdf" or "page-003.svg"
	Format string
	Data   []byte
}

// Result holds the composed sheets and their artifacts, in format order.
type Result struct {
	Sheets    []notebook.Sheet
	Artifacts []Artifact
	Stats     Stats
}

// Stats reports the size and timing of one run.
type Stats struct {
	Pages       int
	Bytes       int
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// ValidateFormat rejects formats outside ValidFormats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (want svg, png, pdf or json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming and
// lower-casing each entry and dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.PNGScale <= 0 {
		o.PNGScale = render.DefaultPNGScale
	}
}

// ValidateAndSetDefaults applies defaults and validates the formats.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return ValidateFormats(o.Formats)
}
