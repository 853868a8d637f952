package order

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// totalTolerance is the allowed drift between a reported line total
// and quantity * unit_value before the record is flagged.
const totalTolerance = 0.01

type payload struct {
	Products []item `json:"produtos"`
}

type item struct {
	Code      any `json:"codigo"`
	Reference any `json:"referencia"`

	Description any `json:"descricao"`

	Quantity  any `json:"quantidade"`
	UnitValue any `json:"valor_unitario"`
	Total     any `json:"valor_total"`
}

// Decode parses an extraction payload into records tagged with their
// source file. Field values are coerced leniently since generative
// responses mix numbers, numeric strings and currency notation.
// Records that still fail coercion are kept with NaN values and
// skipped later during consolidation.
func Decode(sourceFile string, data []byte) ([]Record, error) {
	var body payload

	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(body.Products))

	for _, p := range body.Products {
		r := Record{
			SourceFile: sourceFile,

			Code:      asString(p.Code),
			Reference: asString(p.Reference),

			Description: asString(p.Description),

			Quantity:  asNumber(p.Quantity),
			UnitValue: asNumber(p.UnitValue),
		}

		reported := asNumber(p.Total)
		computed := r.Quantity * r.UnitValue

		switch {
		case math.IsNaN(reported):
			r.TotalValue = computed

		case math.Abs(reported-computed) > totalTolerance:
			r.TotalValue = computed
			r.ReportedTotal = reported
			r.TotalMismatch = true

		default:
			r.TotalValue = reported
		}

		records = append(records, r)
	}

	return records, nil
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	default:
		return ""
	}
}

func asNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v

	case string:
		return parseNumber(v)

	default:
		return math.NaN()
	}
}

// parseNumber handles currency notation ("R$ 1.234,56") and plain
// decimal commas alongside regular floats.
func parseNumber(text string) float64 {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "R$")
	text = strings.ReplaceAll(text, " ", "")

	if text == "" {
		return math.NaN()
	}

	if strings.Contains(text, ",") {
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	}

	result, err := strconv.ParseFloat(text, 64)

	if err != nil {
		return math.NaN()
	}

	return result
}
