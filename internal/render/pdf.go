package render

import (
	"fmt"
	"image/color"
	"io"

	"InkOverlay/internal/state"

	"github.com/jung-kurt/gofpdf"
)

var _ Surface = (*PDFSurface)(nil)

// PDFSurface draws onto PDF pages. Every Clear starts a new page, so each
// Render produces one page.
type PDFSurface struct {
	pdf *gofpdf.Fpdf
}

// NewPDFSurface returns a surface with pages of w x h points.
func NewPDFSurface(w, h float64) *PDFSurface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetAutoPageBreak(false, 0)
	return &PDFSurface{pdf: p}
}

func (s *PDFSurface) Clear() { s.pdf.AddPage() }

func (s *PDFSurface) BeginStroke(style Style) {
	r, g, b := rgb8(style.Color)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(style.Width)
	s.pdf.SetLineCapStyle("round")
	s.pdf.SetLineJoinStyle("round")
}

func (s *PDFSurface) MoveTo(x, y float64) { s.pdf.MoveTo(x, y) }
func (s *PDFSurface) LineTo(x, y float64) { s.pdf.LineTo(x, y) }
func (s *PDFSurface) Stroke()             { s.pdf.DrawPath("D") }

// Pages returns the number of pages drawn so far.
func (s *PDFSurface) Pages() int { return s.pdf.PageCount() }

// Output writes the document to w and closes it.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("could not write pdf: %w", err)
	}
	return nil
}

func rgb8(c color.Color) (r, g, b int) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, _ := c.RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}

// WritePDF renders paths onto a single w x h page and writes it out.
// Only the drawing is exported; nothing in the file can be loaded back
// into a store.
func WritePDF(out io.Writer, r *Renderer, paths []state.Path, proj Projection, w, h float64) error {
	s := NewPDFSurface(w, h)
	r.Render(s, paths, proj)
	return s.Output(out)
}
