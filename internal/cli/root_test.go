package cli

import (
	"testing"
	"time"

	"github.com/ksolberg/habitkit/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "full names mixed case",
			input: "Monday,SATURDAY",
			want:  []time.Weekday{time.Monday, time.Saturday},
		},
		{
			name:  "numeric",
			input: "0,6",
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:  "spaces and empty parts skipped",
			input: " mon , ,tue",
			want:  []time.Weekday{time.Monday, time.Tuesday},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:    "unknown day",
			input:   "funday",
			wantErr: true,
		},
		{
			name:    "number out of range",
			input:   "7",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatFrequency(t *testing.T) {
	custom, err := models.Custom(time.Monday, time.Wednesday)
	if err != nil {
		t.Fatalf("Custom() error: %v", err)
	}

	tests := []struct {
		name string
		freq models.Frequency
		want string
	}{
		{"daily", models.Daily(), "daily"},
		{"zero value", models.Frequency{}, "daily"},
		{"weekdays", models.Weekdays(), "weekdays"},
		{"weekends", models.Weekends(), "weekends"},
		{"custom", custom, "custom on Mon,Wed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFrequency(tt.freq); got != tt.want {
				t.Errorf("FormatFrequency() = %q, want %q", got, tt.want)
			}
		})
	}
}
