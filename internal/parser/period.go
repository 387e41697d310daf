package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// monthNumerals maps full English month names to two-digit numerals.
var monthNumerals = map[string]string{
	"january":   "01",
	"february":  "02",
	"march":     "03",
	"april":     "04",
	"may":       "05",
	"june":      "06",
	"july":      "07",
	"august":    "08",
	"september": "09",
	"october":   "10",
	"november":  "11",
	"december":  "12",
}

// periodRe matches a full month name followed by a 4-digit year anywhere in
// a filename, e.g. "June 2025 report.xlsx" or "siv_September2024.xls".
var periodRe = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\D{0,20}?(\d{4})`)

// ResolvePeriod derives the "YYYY-MM" reporting-period key from the source
// filename. Absence of a match is a degraded mode, not an error: records
// from such files still count toward extraction but cannot be merged into
// per-period values.
func ResolvePeriod(fileName string) (string, bool) {
	m := periodRe.FindStringSubmatch(fileName)
	if len(m) < 3 {
		return "", false
	}
	numeral, ok := monthNumerals[strings.ToLower(m[1])]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s-%s", m[2], numeral), true
}
