package parser

import "testing"

func TestNormalizeCell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"  Embassy \n or Post\t", "Embassy or Post"},
		{"Doha ", "Doha"},
		{"", ""},
		{"   ", ""},
		{"one  two", "one two"},
	}
	for _, tc := range cases {
		if got := NormalizeCell(tc.in); got != tc.want {
			t.Errorf("NormalizeCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{" 12 ", 12},
		{"1,204", 1204},
		{"12.0", 12},
		{"", 0},
		{"n/a", 0},
		{"-5", 0}, // counts are non-negative
	}
	for _, tc := range cases {
		if got := parseCount(tc.in); got != tc.want {
			t.Errorf("parseCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
