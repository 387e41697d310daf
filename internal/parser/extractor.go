package parser

import (
	"log"

	"sivportal/internal/model"
)

// ExtractRow turns one data row into a normalized record, or nil when the
// row should be skipped: every cell empty, identifier blank, or metric zero.
// Zero-activity rows are a business rule, not an error: only periods with
// nonzero counts are recorded. Any panic inside a single row is recovered
// and the row is skipped with a logged warning; failure is row-local, never
// batch-fatal.
func ExtractRow(row []string, cm model.ColumnMap, rowNo int, fileName string) (rec *model.ExtractedRecord) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("row %d: skipped after extraction panic: %v", rowNo, r)
			rec = nil
		}
	}()

	if allEmpty(row) {
		return nil
	}

	identifier := NormalizeCell(cellAt(row, cm.Identifier))
	if identifier == "" {
		return nil
	}

	metric := 0
	if cm.HasMetric() {
		metric = parseCount(cellAt(row, cm.Metric))
	}
	if metric == 0 {
		return nil
	}

	region := identifier
	if cm.HasRegion() {
		if r := NormalizeCell(cellAt(row, cm.Region)); r != "" {
			region = r
		}
	}

	rec = &model.ExtractedRecord{
		Identifier:  identifier,
		Region:      region,
		MetricValue: metric,
		SourceRow:   rowNo,
		SourceFile:  fileName,
	}

	if cm.HasSubtotal() {
		rec.SubtotalValue = parseCount(cellAt(row, cm.Subtotal))
		rec.HasSubtotal = true
	}

	if period, ok := ResolvePeriod(fileName); ok {
		rec.Period = period
		rec.PeriodValue = metric
	}

	return rec
}

// cellAt reads a cell tolerating ragged rows.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func allEmpty(row []string) bool {
	for _, cell := range row {
		if NormalizeCell(cell) != "" {
			return false
		}
	}
	return true
}
