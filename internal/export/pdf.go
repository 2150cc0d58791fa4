package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	// ReportTitle heads the PDF report
	ReportTitle = "Reporte de Inventario del Hogar"
	// PDFFileName is the download name of the report
	PDFFileName = "home-inventory.pdf"
	// PDFContentType is the MIME type of the report
	PDFContentType = "application/pdf"
)

// column widths in mm for A4 landscape
var pdfColumnWidths = []float64{55, 30, 30, 20, 22, 42, 28, 30}

// WritePDF renders the rows as a landscape A4 table
func WritePDF(w io.Writer, rows []Row, generatedAt time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(ReportTitle, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(ReportTitle))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr("Generado el "+generatedAt.Format(time.DateOnly)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range Headers {
		pdf.CellFormat(pdfColumnWidths[i], 8, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for n, row := range rows {
		if n%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for i, value := range row.Values() {
			pdf.CellFormat(pdfColumnWidths[i], 7, tr(value), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
