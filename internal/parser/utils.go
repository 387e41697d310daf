package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeCell canonicalizes a cell value for matching: Unicode NFC,
// trimmed, inner whitespace collapsed to single spaces. Report files pass
// through several hands and pick up stray line breaks and NBSPs on the way.
func NormalizeCell(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.TrimSpace(s)
	return whitespaceRe.ReplaceAllString(s, " ")
}

// containsAnyOf builds a case-insensitive substring matcher over keywords.
func containsAnyOf(keywords ...string) func(string) bool {
	return func(cell string) bool {
		cell = strings.ToLower(cell)
		for _, kw := range keywords {
			if strings.Contains(cell, kw) {
				return true
			}
		}
		return false
	}
}

// matchMetric detects the target count column: the bare header "sq" or any
// header mentioning the sq1/sq2 case categories.
func matchMetric(cell string) bool {
	cell = strings.ToLower(cell)
	if cell == "sq" {
		return true
	}
	return strings.Contains(cell, "sq1") || strings.Contains(cell, "sq2")
}

// matchSubtotal detects per-section totals while leaving the grand total
// to its own rule.
func matchSubtotal(cell string) bool {
	cell = strings.ToLower(cell)
	return strings.Contains(cell, "total") && !strings.Contains(cell, "grand")
}

// parseCount converts a cell to a non-negative count. Thousands separators
// are stripped; non-numeric and missing values count as zero. Some exports
// store integers as "12.0", so a float parse backs up Atoi.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 {
			return 0
		}
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}
