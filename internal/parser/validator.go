package parser

import (
	"fmt"

	"sivportal/internal/model"
)

// Validate categorizes an extracted batch into errors (structurally
// invalid) and warnings (suspicious but usable) for the preview step.
// The report never blocks reconciliation; it only informs a human.
func Validate(records []*model.ExtractedRecord) model.ValidationReport {
	report := model.ValidationReport{
		Errors:   []string{},
		Warnings: []string{},
	}

	seen := make(map[string]int, len(records))
	for _, rec := range records {
		// Unreachable given the extractor's guarantees; kept as a guard
		// against future extractor changes.
		if rec.Identifier == "" && rec.Region == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("row %d: record has neither identifier nor region", rec.SourceRow))
			continue
		}

		if rec.HasSubtotal && rec.SubtotalValue == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("row %d: %q has a zero subtotal", rec.SourceRow, rec.Identifier))
		}

		if prev, ok := seen[rec.Identifier]; ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("row %d: duplicate entry for %q (first seen at row %d); later values win per period", rec.SourceRow, rec.Identifier, prev))
		} else {
			seen[rec.Identifier] = rec.SourceRow
		}
	}

	return report
}
