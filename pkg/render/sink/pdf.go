package sink

import (
	"bytes"
	"strconv"

	"codeberg.org/go-pdf/fpdf"

	"github.com/matzehuels/gridda/pkg/buildinfo"
	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/render"
)

const (
	pdfFont  = "Helvetica"
	ptPerMM  = 72 / 25.4
	capRatio = 0.7 // Helvetica cap height relative to font size
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title   string
	noTitle bool
}

// WithDocumentTitle sets the PDF document title metadata.
func WithDocumentTitle(s string) PDFOption { return func(r *pdfRenderer) { r.title = s } }

// WithoutPDFTitles omits page titles.
func WithoutPDFTitles() PDFOption { return func(r *pdfRenderer) { r.noTitle = true } }

// RenderPDF writes every sheet as one page of a single PDF document. Each page
// has the exact trim size of its sheet.
func RenderPDF(sheets []notebook.Sheet, opts ...PDFOption) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no pages to render")
	}
	r := pdfRenderer{title: "gridda notebook"}
	for _, opt := range opts {
		opt(&r)
	}

	first := sheets[0].Dimensions
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(r.title, true)
	pdf.SetCreator(buildinfo.Creator(), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, sh := range sheets {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: sh.Dimensions.Width, Ht: sh.Dimensions.Height})
		if err := r.renderPage(pdf, sh, tr); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}

func (r pdfRenderer) renderPage(pdf *fpdf.Fpdf, sh notebook.Sheet, tr func(string) string) error {
	br, bg, bb, err := render.RGB255(sh.Background)
	if err != nil {
		return err
	}
	lr, lg, lb, err := render.RGB255(sh.Grid.LineColor)
	if err != nil {
		return err
	}

	pdf.SetFillColor(br, bg, bb)
	pdf.Rect(0, 0, sh.Dimensions.Width, sh.Dimensions.Height, "F")

	if !r.noTitle {
		if t, ok := titleOf(sh); ok {
			tr8, tg8, tb8, err := render.RGB255(t.color)
			if err != nil {
				return err
			}
			pdf.SetTextColor(tr8, tg8, tb8)
			pdf.SetFont(pdfFont, "", t.fontSize*ptPerMM)
			pdf.Text(t.x, t.y, tr(sh.Page.Title))
		}
	}

	g := sh.Geometry
	pdf.SetDrawColor(lr, lg, lb)
	pdf.SetLineCapStyle("square")
	pdf.SetLineWidth(sh.Grid.LineThickness)
	for _, l := range g.Lines() {
		pdf.Line(l.X1, l.Y1, l.X2, l.Y2)
	}

	if b := g.Border; b != nil {
		pdf.SetLineWidth(2 * sh.Grid.LineThickness)
		pdf.Rect(b.X, b.Y, b.Width, b.Height, "D")
	}

	if gl := g.Glyph; gl != nil {
		label := strconv.Itoa(sh.Page.Number)
		pdf.SetTextColor(lr, lg, lb)
		pdf.SetFont(pdfFont, "", gl.FontSize*ptPerMM)
		w := pdf.GetStringWidth(label)
		pdf.Text(gl.X-w/2, gl.Y+gl.FontSize*capRatio/2, label)
	}
	return pdf.Error()
}
