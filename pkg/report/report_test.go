package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/ordemia/ordemia/pkg/order"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testResult() *order.Result {
	return &order.Result{
		Products: []order.Product{
			{
				Code:        "P-100",
				Description: "Parafuso sextavado M8",
				Quantity:    15,
				UnitValue:   2.5,
				TotalValue:  32.5,
				Sources:     []string{"a.pdf", "b.pdf"},
			},
			{
				Description: "Cabo flexível 2,5mm",
				Quantity:    7.5,
				UnitValue:   1.2,
				TotalValue:  9.0,
				Sources:     []string{"a.pdf"},
			},
		},

		TotalProducts: 2,
		TotalValue:    41.5,

		ProcessingInfo: order.ProcessingInfo{
			ProcessedFiles:    2,
			FailedFiles:       []order.FileError{},
			ExtractedProducts: 3,
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, value := range []string{"pdf", "XLSX", "csv"} {
		_, err := ParseFormat(value)
		require.NoError(t, err)
	}

	_, err := ParseFormat("docx")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFilename(t *testing.T) {
	require.Equal(t, "pedido_compra_abc123.xlsx", Filename("abc123", FormatXLSX))
}

func TestGenerateCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, FormatCSV, testResult()))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	require.NoError(t, err)

	require.Equal(t, "PEDIDO DE COMPRA CONSOLIDADO", rows[0][0])

	last := rows[len(rows)-1]
	require.Equal(t, "-", last[0])
	require.Equal(t, "Cabo flexível 2,5mm", last[2])
	require.Equal(t, "7.5", last[3])
	require.Equal(t, "a.pdf", last[6])

	penultimate := rows[len(rows)-2]
	require.Equal(t, "P-100", penultimate[0])
	require.Equal(t, "15", penultimate[3])
	require.Equal(t, "a.pdf, b.pdf", penultimate[6])
}

func TestGenerateXLSX(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, FormatXLSX, testResult()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	defer f.Close()

	title, err := f.GetCellValue("Pedido de Compra", "A1")
	require.NoError(t, err)
	require.Equal(t, "PEDIDO DE COMPRA CONSOLIDADO", title)

	header, err := f.GetCellValue("Pedido de Compra", "C9")
	require.NoError(t, err)
	require.Equal(t, "Descrição", header)

	description, err := f.GetCellValue("Pedido de Compra", "C10")
	require.NoError(t, err)
	require.Equal(t, "Parafuso sextavado M8", description)
}

func TestGeneratePDF(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, FormatPDF, testResult()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestGenerateUnsupported(t *testing.T) {
	var buf bytes.Buffer

	err := Generate(&buf, Format("docx"), testResult())
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
