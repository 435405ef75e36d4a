package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const pageWidth = 190.0

// PDFExporter renders datasets into a single-table A4 document headed by
// the institution name.
type PDFExporter struct {
	institution string
}

// NewPDFExporter constructs a PDF exporter. institution is printed above the
// title when set.
func NewPDFExporter(institution string) *PDFExporter {
	return &PDFExporter{institution: institution}
}

// Render creates the PDF document.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle(data.Title, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if e.institution != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(e.institution), "", 1, "C", false, 0, "")
	}
	if data.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(data.Title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	for _, detail := range data.Details {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(35, 6, tr(detail.Label), "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(detail.Value), "", 1, "", false, 0, "")
	}
	if len(data.Details) > 0 {
		pdf.Ln(4)
	}

	colWidth := pageWidth / float64(len(data.Headers))
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(data.Rows) == 0 {
		pdf.CellFormat(pageWidth, 7, "No records", "1", 1, "C", false, 0, "")
	}
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, tr(row[header]), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
