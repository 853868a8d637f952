package report

import (
	"io"

	"github.com/ordemia/ordemia/pkg/order"

	"github.com/xuri/excelize/v2"
)

func generateXLSX(w io.Writer, result *order.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pedido de Compra"

	index, err := f.NewSheet(sheet)

	if err != nil {
		return err
	}

	f.SetActiveSheet(index)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},

		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	if err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},

		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},

		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	if err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", reportTitle)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	for i, row := range summaryRows(result) {
		cell, _ := excelize.CoordinatesToCellName(1, 3+i)
		f.SetCellValue(sheet, cell, row.label)

		cell, _ = excelize.CoordinatesToCellName(2, 3+i)
		f.SetCellValue(sheet, cell, row.value)
	}

	const headerRow = 9

	for i, header := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)

		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, p := range result.Products {
		row := headerRow + 1 + i

		values := []any{
			orDash(p.Code),
			orDash(p.Reference),
			p.Description,
			p.Quantity,
			p.UnitValue,
			p.TotalValue,
			sources(p),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	widths := []float64{15, 15, 40, 12, 15, 15, 25}

	for i, width := range widths {
		column, _ := excelize.ColumnNumberToName(i + 1)

		if err := f.SetColWidth(sheet, column, column, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}
