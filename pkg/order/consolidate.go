package order

import (
	"strings"
)

type accumulator struct {
	code        string
	reference   string
	description string

	quantity float64
	total    float64

	lastUnit float64

	sources []string
	seen    map[string]bool
}

// Consolidate folds per-file extraction results into a single Result.
// Records sharing an identity key are merged: quantities and totals
// are summed, the unit value of the last matched record wins, and the
// contributing source files form an insertion-ordered set. Failed
// files are recorded and never abort the fold.
func Consolidate(files []FileResult) *Result {
	result := &Result{
		Products: []Product{},

		ProcessingInfo: ProcessingInfo{
			FailedFiles: []FileError{},
		},
	}

	var keys []string
	groups := map[string]*accumulator{}

	for _, f := range files {
		if f.Err != nil {
			result.ProcessingInfo.FailedFiles = append(result.ProcessingInfo.FailedFiles, FileError{
				File:  f.File,
				Error: f.Err.Error(),
			})

			continue
		}

		result.ProcessingInfo.ProcessedFiles++

		for _, r := range f.Records {
			result.ProcessingInfo.ExtractedProducts++

			if !validRecord(r) {
				result.ProcessingInfo.SkippedRecords++
				continue
			}

			key := identityKey(r)

			group, ok := groups[key]

			if !ok {
				group = &accumulator{
					code:        strings.TrimSpace(r.Code),
					reference:   strings.TrimSpace(r.Reference),
					description: strings.TrimSpace(r.Description),

					seen: map[string]bool{},
				}

				groups[key] = group
				keys = append(keys, key)
			}

			group.quantity += r.Quantity
			group.total += r.TotalValue
			group.lastUnit = r.UnitValue

			if source := r.SourceFile; source != "" && !group.seen[source] {
				group.seen[source] = true
				group.sources = append(group.sources, source)
			}
		}
	}

	for _, key := range keys {
		group := groups[key]

		result.Products = append(result.Products, Product{
			Code:      group.code,
			Reference: group.reference,

			Description: group.description,

			Quantity:  group.quantity,
			UnitValue: group.lastUnit,

			TotalValue: group.total,

			Sources: group.sources,
		})

		result.TotalValue += group.total
	}

	result.TotalProducts = len(result.Products)

	return result
}

// identityKey decides whether two records represent the same product.
// A non-empty code is authoritative regardless of description; a
// reference is the next best identifier; otherwise the case-folded,
// whitespace-collapsed description is used.
func identityKey(r Record) string {
	if code := normalize(r.Code); code != "" {
		return "code:" + code
	}

	if reference := normalize(r.Reference); reference != "" {
		return "ref:" + reference
	}

	return "desc:" + normalize(r.Description)
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// validRecord rejects records that cannot participate in
// consolidation. NaN values from failed numeric coercion fail the
// comparisons below.
func validRecord(r Record) bool {
	if strings.TrimSpace(r.Description) == "" {
		return false
	}

	if !(r.Quantity >= 0) || !(r.UnitValue >= 0) || !(r.TotalValue >= 0) {
		return false
	}

	return true
}
