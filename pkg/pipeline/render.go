package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/render/sink"
)

// DocumentName is the base name of whole-notebook artifacts.
const DocumentName = "notebook"

// PageName returns the base name of a per-page artifact, e.g. "page-003".
func PageName(sh notebook.Sheet) string {
	return fmt.Sprintf("page-%03d", sh.Page.Number)
}

// renderFormat renders sheets in one format. PDF and JSON produce a single
// document; SVG and PNG produce one file per page.
func renderFormat(ctx context.Context, format string, sheets []notebook.Sheet, opts Options) ([]Artifact, error) {
	switch format {
	case FormatPDF:
		var pdfOpts []sink.PDFOption
		if opts.Title != "" {
			pdfOpts = append(pdfOpts, sink.WithDocumentTitle(opts.Title))
		}
		if opts.NoTitles {
			pdfOpts = append(pdfOpts, sink.WithoutPDFTitles())
		}
		data, err := sink.RenderPDF(sheets, pdfOpts...)
		if err != nil {
			return nil, err
		}
		return []Artifact{{Name: DocumentName + ".pdf", Format: format, Data: data}}, nil

	case FormatJSON:
		data, err := sink.RenderJSON(sheets, sink.WithJSONIndent())
		if err != nil {
			return nil, err
		}
		return []Artifact{{Name: DocumentName + ".json", Format: format, Data: data}}, nil

	case FormatSVG, FormatPNG:
		var svgOpts []sink.SVGOption
		if opts.NoTitles {
			svgOpts = append(svgOpts, sink.WithoutTitle())
		}
		out := make([]Artifact, 0, len(sheets))
		for _, sh := range sheets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			var data []byte
			if format == FormatSVG {
				data = sink.RenderSVG(sh, svgOpts...)
			} else {
				var err error
				if data, err = sink.RenderPNG(ctx, sh, sink.WithScale(opts.PNGScale), sink.WithPNGSVGOptions(svgOpts...)); err != nil {
					return nil, fmt.Errorf("page %d: %w", sh.Page.Number, err)
				}
			}
			out = append(out, Artifact{Name: PageName(sh) + "." + format, Format: format, Data: data})
		}
		return out, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
