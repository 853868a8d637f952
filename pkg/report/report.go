// Package report renders a consolidation result into downloadable
// PDF, XLSX and CSV documents.
package report

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ordemia/ordemia/pkg/order"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported report format")

const reportTitle = "PEDIDO DE COMPRA CONSOLIDADO"

var columnHeaders = []string{"Código", "Referência", "Descrição", "Quantidade", "Valor Unitário", "Valor Total", "Fonte"}

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(value)) {
	case FormatPDF:
		return FormatPDF, nil

	case FormatXLSX:
		return FormatXLSX, nil

	case FormatCSV:
		return FormatCSV, nil

	default:
		return "", ErrUnsupportedFormat
	}
}

func Generate(w io.Writer, format Format, result *order.Result) error {
	switch format {
	case FormatPDF:
		return generatePDF(w, result)

	case FormatXLSX:
		return generateXLSX(w, result)

	case FormatCSV:
		return generateCSV(w, result)

	default:
		return ErrUnsupportedFormat
	}
}

func Filename(sessionID string, format Format) string {
	return "pedido_compra_" + sessionID + "." + string(format)
}

func ContentType(format Format) string {
	switch format {
	case FormatPDF:
		return "application/pdf"

	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	case FormatCSV:
		return "text/csv"

	default:
		return "application/octet-stream"
	}
}

type summaryRow struct {
	label string
	value string
}

func summaryRows(result *order.Result) []summaryRow {
	return []summaryRow{
		{"Data de Geração:", time.Now().Format("02/01/2006 15:04:05")},
		{"Total de Produtos:", strconv.Itoa(result.TotalProducts)},
		{"Valor Total:", money(result.TotalValue)},
		{"Arquivos Processados:", strconv.Itoa(result.ProcessingInfo.ProcessedFiles)},
		{"Produtos Extraídos:", strconv.Itoa(result.ProcessingInfo.ExtractedProducts)},
	}
}

func money(value float64) string {
	return "R$ " + strconv.FormatFloat(value, 'f', 2, 64)
}

func quantity(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

func sources(p order.Product) string {
	return strings.Join(p.Sources, ", ")
}
