package parser

import (
	"fmt"
	"testing"
)

func TestResolvePeriod(t *testing.T) {
	t.Parallel()

	cases := []struct {
		fileName string
		want     string
		ok       bool
	}{
		{"June 2025 report.xlsx", "2025-06", true},
		{"JUNE 2025.xlsx", "2025-06", true},
		{"siv_September2024.xls", "2024-09", true},
		{"Embassy counts - december 2023 final.csv", "2023-12", true},
		{"may 2026 stats.xlsx", "2026-05", true},
		{"report-q3.xlsx", "", false},
		{"2025 June.xlsx", "", false}, // year must follow the month name
		{"monthly.xlsx", "", false},
	}

	for _, tc := range cases {
		got, ok := ResolvePeriod(tc.fileName)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ResolvePeriod(%q) = %q, %v; want %q, %v", tc.fileName, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolvePeriodAllMonths(t *testing.T) {
	t.Parallel()

	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for i, m := range months {
		got, ok := ResolvePeriod(m + " 2025.xlsx")
		if !ok {
			t.Fatalf("month %q not resolved", m)
		}
		want := fmt.Sprintf("2025-%02d", i+1)
		if got != want {
			t.Errorf("month %q: got %q, want %q", m, got, want)
		}
	}
}
