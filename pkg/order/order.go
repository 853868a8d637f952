// Package order consolidates product records extracted from purchase
// order documents into a single deduplicated result.
package order

// Record is one extracted line item from one file, pre-consolidation.
type Record struct {
	SourceFile string `json:"source_file"`

	Code      string `json:"code,omitempty"`
	Reference string `json:"reference,omitempty"`

	Description string `json:"description"`

	Quantity  float64 `json:"quantity"`
	UnitValue float64 `json:"unit_value"`

	// TotalValue is the value used for aggregation. When the reported
	// line total disagrees with quantity*unit_value beyond tolerance,
	// the computed value wins and ReportedTotal keeps the original.
	TotalValue    float64 `json:"total_value"`
	ReportedTotal float64 `json:"reported_total,omitempty"`
	TotalMismatch bool    `json:"total_mismatch,omitempty"`
}

// Product is a deduplicated, aggregated product spanning one or more
// source files.
type Product struct {
	Code      string `json:"code,omitempty"`
	Reference string `json:"reference,omitempty"`

	Description string `json:"description"`

	Quantity  float64 `json:"quantity"`
	UnitValue float64 `json:"unit_value"`

	TotalValue float64 `json:"total_value"`

	Sources []string `json:"sources"`
}

type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type ProcessingInfo struct {
	ProcessedFiles int `json:"processed_files"`

	FailedFiles []FileError `json:"failed_files"`

	ExtractedProducts int `json:"extracted_products"`
	SkippedRecords    int `json:"skipped_records"`
}

type Result struct {
	Products []Product `json:"products"`

	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`

	ProcessingInfo ProcessingInfo `json:"processing_info"`
}

// FileResult carries one file's extraction outcome into Consolidate.
// Records and Err are mutually exclusive.
type FileResult struct {
	File string

	Records []Record
	Err     error
}
