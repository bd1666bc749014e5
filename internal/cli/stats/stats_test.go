package stats

import (
	"testing"
	"unicode/utf8"
)

func TestWeekBar(t *testing.T) {
	tests := []struct {
		name  string
		count int
		peak  int
		want  string
	}{
		{"empty row", 0, 3, "   "},
		{"partial row", 2, 4, "██  "},
		{"full row", 3, 3, "███"},
		{"no completions all week", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekBar(tt.count, tt.peak)
			if got != tt.want {
				t.Errorf("weekBar(%d, %d) = %q, want %q", tt.count, tt.peak, got, tt.want)
			}
			// Every row must occupy the same number of columns.
			if cells := utf8.RuneCountInString(got); cells != tt.peak {
				t.Errorf("weekBar(%d, %d) spans %d cells, want %d", tt.count, tt.peak, cells, tt.peak)
			}
		})
	}
}
