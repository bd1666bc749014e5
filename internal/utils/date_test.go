package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2025-06-15",
			want:  Date{Year: 2025, Month: time.June, Day: 15},
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  Date{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name:    "leap day in non-leap year",
			input:   "2025-02-29",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong format",
			input:   "15/06/2025",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2025-13-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 2025, Month: time.January, Day: 5}
	if got := d.String(); got != "2025-01-05" {
		t.Errorf("String() = %q, want %q", got, "2025-01-05")
	}
}

func TestDateWeekday(t *testing.T) {
	tests := []struct {
		date string
		want time.Weekday
	}{
		{"2025-06-15", time.Sunday},
		{"2025-06-16", time.Monday},
		{"2025-06-21", time.Saturday},
		{"2024-02-29", time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.date, err)
			}
			if got := d.Weekday(); got != tt.want {
				t.Errorf("Weekday() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"forward within month", "2025-06-15", 3, "2025-06-18"},
		{"backward within month", "2025-06-15", -3, "2025-06-12"},
		{"across month boundary", "2025-06-30", 1, "2025-07-01"},
		{"across year boundary", "2024-12-31", 1, "2025-01-01"},
		{"into leap day", "2024-02-28", 1, "2024-02-29"},
		{"over leap day", "2024-02-28", 2, "2024-03-01"},
		{"zero days", "2025-06-15", 0, "2025-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.date, err)
			}
			if got := d.AddDays(tt.n).String(); got != tt.want {
				t.Errorf("AddDays(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"same day", "2025-06-15", "2025-06-15", 0},
		{"adjacent days", "2025-06-15", "2025-06-16", 1},
		{"reversed", "2025-06-16", "2025-06-15", -1},
		{"across month", "2025-06-28", "2025-07-02", 4},
		{"across leap day", "2024-02-28", "2024-03-01", 2},
		{"full year", "2025-01-01", "2026-01-01", 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseDate(tt.a)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.a, err)
			}
			b, err := ParseDate(tt.b)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.b, err)
			}
			if got := DaysBetween(a, b); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2025-06-15") {
		t.Error("ValidDate(2025-06-15) = false, want true")
	}
	if ValidDate("not-a-date") {
		t.Error("ValidDate(not-a-date) = true, want false")
	}
}
