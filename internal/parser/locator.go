package parser

import (
	"fmt"
	"strings"

	"sivportal/internal/model"
)

// headerScanRows bounds the search window for the header row.
const headerScanRows = 10

// headerKeywords are the substrings that mark a row as a header candidate.
// The match is deliberately loose: a stray "country" in a title row is
// accepted as a header. That false positive is a known limitation of the
// source layouts, not something the locator tries to correct.
var headerKeywords = []string{"embassy", "country", "post"}

// previewRows/previewCols size the diagnostic excerpt attached to a failure.
const (
	previewRows = 5
	previewCols = 5
)

// HeaderNotFoundError reports that no header row was found inside the scan
// window. Preview carries the sheet's top-left corner for diagnostics.
type HeaderNotFoundError struct {
	Preview [][]string
}

func (e *HeaderNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no header row found in the first %d rows", headerScanRows)
	for _, row := range e.Preview {
		b.WriteString("\n  | ")
		b.WriteString(strings.Join(row, " | "))
	}
	return b.String()
}

// LocateHeader scans at most the first headerScanRows rows of the sheet and
// returns the index of the first row containing a recognizable column-name
// substring, case-insensitively.
func LocateHeader(sheet model.RawSheet) (int, error) {
	limit := len(sheet)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		for _, cell := range sheet[i] {
			lower := strings.ToLower(NormalizeCell(cell))
			for _, kw := range headerKeywords {
				if strings.Contains(lower, kw) {
					return i, nil
				}
			}
		}
	}
	return 0, &HeaderNotFoundError{Preview: sheetPreview(sheet)}
}

// sheetPreview extracts the top-left previewRows x previewCols cells.
func sheetPreview(sheet model.RawSheet) [][]string {
	rows := len(sheet)
	if rows > previewRows {
		rows = previewRows
	}
	out := make([][]string, 0, rows)
	for i := 0; i < rows; i++ {
		cols := len(sheet[i])
		if cols > previewCols {
			cols = previewCols
		}
		row := make([]string, cols)
		for j := 0; j < cols; j++ {
			row[j] = NormalizeCell(sheet[i][j])
		}
		out = append(out, row)
	}
	return out
}
