package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ordemia/ordemia/pkg/order"
)

func generateCSV(w io.Writer, result *order.Result) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{reportTitle},
		{},
	}

	for _, row := range summaryRows(result) {
		rows = append(rows, []string{row.label, row.value})
	}

	rows = append(rows, []string{}, columnHeaders)

	for _, p := range result.Products {
		rows = append(rows, []string{
			orDash(p.Code),
			orDash(p.Reference),
			p.Description,
			quantity(p.Quantity),
			strconv.FormatFloat(p.UnitValue, 'f', 2, 64),
			strconv.FormatFloat(p.TotalValue, 'f', 2, 64),
			sources(p),
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return err
	}

	return writer.Error()
}
