package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsolidateMergesByDescription(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Description: "Caneta", Quantity: 10, UnitValue: 2.0, TotalValue: 20.0},
			},
		},
		{
			File: "b",
			Records: []Record{
				{SourceFile: "b", Description: "caneta ", Quantity: 5, UnitValue: 2.5, TotalValue: 12.5},
			},
		},
	})

	require.Len(t, result.Products, 1)

	p := result.Products[0]
	require.Equal(t, "Caneta", p.Description)
	require.Equal(t, 15.0, p.Quantity)
	require.Equal(t, 2.5, p.UnitValue)
	require.Equal(t, 32.5, p.TotalValue)
	require.Equal(t, []string{"a", "b"}, p.Sources)

	require.Equal(t, 2, result.ProcessingInfo.ProcessedFiles)
	require.Equal(t, 2, result.ProcessingInfo.ExtractedProducts)
}

func TestConsolidateCodePrecedence(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Code: "P-100", Description: "Parafuso sextavado M8", Quantity: 10, UnitValue: 1.0, TotalValue: 10.0},
				{SourceFile: "a", Code: "P-100", Description: "PARAF. SEXT. M8 ZINC", Quantity: 5, UnitValue: 1.2, TotalValue: 6.0},
			},
		},
	})

	require.Len(t, result.Products, 1)
	require.Equal(t, 15.0, result.Products[0].Quantity)
	require.Equal(t, 1.2, result.Products[0].UnitValue)
}

func TestConsolidateNoCrossKeyBleed(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Code: "A1", Description: "Item", Quantity: 1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "a", Code: "A2", Description: "Item", Quantity: 1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "a", Description: "Item avulso", Quantity: 1, UnitValue: 1, TotalValue: 1},
			},
		},
	})

	require.Len(t, result.Products, 3)
}

func TestConsolidateReferenceFallback(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Reference: "REF-9", Description: "Cabo flexível 2,5mm", Quantity: 100, UnitValue: 0.5, TotalValue: 50.0},
				{SourceFile: "a", Reference: "ref-9 ", Description: "Cabo flex. 2.5mm", Quantity: 50, UnitValue: 0.6, TotalValue: 30.0},
			},
		},
	})

	require.Len(t, result.Products, 1)
	require.Equal(t, 150.0, result.Products[0].Quantity)
}

func TestConsolidateIdempotentSources(t *testing.T) {
	records := []Record{
		{SourceFile: "a", Description: "Caderno", Quantity: 3, UnitValue: 8.0, TotalValue: 24.0},
	}

	result := Consolidate([]FileResult{
		{File: "a", Records: records},
		{File: "a", Records: records},
	})

	require.Len(t, result.Products, 1)
	require.Equal(t, 6.0, result.Products[0].Quantity)
	require.Equal(t, []string{"a"}, result.Products[0].Sources)
}

func TestConsolidateOrderDeterminism(t *testing.T) {
	files := []FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Description: "Zebra", Quantity: 1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "a", Description: "Abacaxi", Quantity: 1, UnitValue: 1, TotalValue: 1},
			},
		},
		{
			File: "b",
			Records: []Record{
				{SourceFile: "b", Description: "Mesa", Quantity: 1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "b", Description: "zebra", Quantity: 1, UnitValue: 1, TotalValue: 1},
			},
		},
	}

	for range 5 {
		result := Consolidate(files)

		require.Equal(t, "Zebra", result.Products[0].Description)
		require.Equal(t, "Abacaxi", result.Products[1].Description)
		require.Equal(t, "Mesa", result.Products[2].Description)
	}
}

func TestConsolidateFailureIsolation(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "file1",
			Records: []Record{
				{SourceFile: "file1", Description: "Lápis", Quantity: 2, UnitValue: 1.5, TotalValue: 3.0},
			},
		},
		{
			File: "file2",
			Err:  errors.New("provider timeout"),
		},
		{
			File: "file3",
			Records: []Record{
				{SourceFile: "file3", Description: "Borracha", Quantity: 4, UnitValue: 0.5, TotalValue: 2.0},
			},
		},
	})

	require.Equal(t, 2, result.ProcessingInfo.ProcessedFiles)
	require.Len(t, result.ProcessingInfo.FailedFiles, 1)
	require.Equal(t, "file2", result.ProcessingInfo.FailedFiles[0].File)
	require.Len(t, result.Products, 2)
}

func TestConsolidateSkipsInvalidRecords(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Description: "", Quantity: 1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "a", Description: "   ", Quantity: 1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "a", Description: "Negativo", Quantity: -1, UnitValue: 1, TotalValue: 1},
				{SourceFile: "a", Description: "Válido", Quantity: 1, UnitValue: 1, TotalValue: 1},
			},
		},
	})

	require.Equal(t, 3, result.ProcessingInfo.SkippedRecords)
	require.Equal(t, 4, result.ProcessingInfo.ExtractedProducts)
	require.Len(t, result.Products, 1)
}

func TestConsolidateTotalInvariant(t *testing.T) {
	result := Consolidate([]FileResult{
		{
			File: "a",
			Records: []Record{
				{SourceFile: "a", Description: "Caneta", Quantity: 10, UnitValue: 2.0, TotalValue: 20.0},
				{SourceFile: "a", Description: "caneta", Quantity: 5, UnitValue: 2.5, TotalValue: 12.5},
				{SourceFile: "a", Description: "Caderno", Quantity: 2, UnitValue: 10.0, TotalValue: 20.0},
			},
		},
	})

	var sum float64

	for _, p := range result.Products {
		sum += p.TotalValue
	}

	require.Equal(t, sum, result.TotalValue)
	require.Equal(t, 52.5, result.TotalValue)

	// not quantity_sum * last unit_value
	require.NotEqual(t, result.Products[0].Quantity*result.Products[0].UnitValue, result.Products[0].TotalValue)
}

func TestConsolidateEmpty(t *testing.T) {
	result := Consolidate(nil)

	require.NotNil(t, result.Products)
	require.NotNil(t, result.ProcessingInfo.FailedFiles)
	require.Equal(t, 0, result.TotalProducts)
	require.Equal(t, 0.0, result.TotalValue)
}
