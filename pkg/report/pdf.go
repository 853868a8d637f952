package report

import (
	"io"
	"strconv"

	"github.com/ordemia/ordemia/pkg/order"

	"github.com/go-pdf/fpdf"
)

func generatePDF(w io.Writer, result *order.Result) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(reportTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)

	for _, row := range summaryRows(result) {
		pdf.SetFillColor(220, 220, 220)
		pdf.CellFormat(50, 8, tr(row.label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(80, 8, tr(row.value), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("PRODUTOS CONSOLIDADOS"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{20, 20, 55, 15, 22, 22, 36}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(54, 96, 146)
	pdf.SetTextColor(255, 255, 255)

	for i, header := range columnHeaders {
		pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", true, 0, "")
	}

	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)

	for _, p := range result.Products {
		cells := []string{
			orDash(p.Code),
			orDash(p.Reference),
			p.Description,
			quantity(p.Quantity),
			strconv.FormatFloat(p.UnitValue, 'f', 2, 64),
			strconv.FormatFloat(p.TotalValue, 'f', 2, 64),
			sources(p),
		}

		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}

		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
