package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfLeft       = 20.0
	pdfTop        = 20.0
	pdfLineHeight = 10.0
	pdfBottom     = 277.0
)

// LineDocument is a title followed by plain text lines.
type LineDocument struct {
	Title string
	Lines []string
}

// PDFExporter renders line documents into A4 PDFs.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// RenderLines writes the title in 18pt and every line in 12pt below it, starting a new
// page when the bottom margin is reached.
func (e *PDFExporter) RenderLines(doc LineDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := pdfTop
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(pdfLeft, y, tr(doc.Title))
	y += pdfLineHeight * 1.5

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range doc.Lines {
		if y > pdfBottom {
			pdf.AddPage()
			y = pdfTop
		}
		pdf.Text(pdfLeft, y, tr(line))
		y += pdfLineHeight
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
