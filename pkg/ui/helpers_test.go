package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is too long", 7, "this i…"},
		{"", 5, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 4); len([]rune(got)) < 4 {
		t.Errorf("padRight should never return shorter than width, got %q", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil); got != "" {
		t.Errorf("Empty input should render empty, got %q", got)
	}

	got := sparkline([]int{0, 4, 8})
	runes := []rune(got)
	if len(runes) != 3 {
		t.Fatalf("Expected one rune per value, got %d", len(runes))
	}
	if runes[0] >= runes[2] {
		t.Errorf("Higher values should render taller blocks: %q", got)
	}
}

func TestBar(t *testing.T) {
	full := bar(10, 10, 8)
	half := bar(5, 10, 8)
	if strings.Count(full, "█") != 8 {
		t.Errorf("Full bar should fill the whole width, got %q", full)
	}
	if strings.Count(half, "█") != 4 {
		t.Errorf("Half bar should fill half the width, got %q", half)
	}
	if len([]rune(full)) != len([]rune(half)) {
		t.Errorf("Bars should keep a constant display width: %q vs %q", full, half)
	}
	if got := bar(5, 0, 8); strings.ContainsRune(got, '█') {
		t.Errorf("Zero max should render an empty bar, got %q", got)
	}
}

func TestFormatPct(t *testing.T) {
	if got := formatPct(60.0); got != "60.0%" {
		t.Errorf("formatPct(60.0) = %q, want 60.0%%", got)
	}
	if got := formatPct(33.333); got != "33.3%" {
		t.Errorf("formatPct(33.333) = %q, want 33.3%%", got)
	}
}
