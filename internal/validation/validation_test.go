package validation

import (
	"testing"
	"time"

	"github.com/ksolberg/habitkit/internal/models"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "2025-06-18", false},
		{"empty", "", true},
		{"wrong format", "18-06-2025", true},
		{"impossible day", "2025-02-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Morning run"); err != nil {
		t.Errorf("ValidateName(valid) error: %v", err)
	}
	if err := ValidateName(""); err == nil {
		t.Error("ValidateName(empty) = nil, want error")
	}
	if err := ValidateName("   "); err == nil {
		t.Error("ValidateName(whitespace) = nil, want error")
	}
}

func TestValidateStreakThreshold(t *testing.T) {
	if err := ValidateStreakThreshold(1); err != nil {
		t.Errorf("ValidateStreakThreshold(1) error: %v", err)
	}
	if err := ValidateStreakThreshold(0); err == nil {
		t.Error("ValidateStreakThreshold(0) = nil, want error")
	}
	if err := ValidateStreakThreshold(-5); err == nil {
		t.Error("ValidateStreakThreshold(-5) = nil, want error")
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name     string
		freqType string
		days     []time.Weekday
		wantType models.FrequencyType
		wantErr  bool
	}{
		{"daily", "daily", nil, models.FrequencyDaily, false},
		{"weekdays", "weekdays", nil, models.FrequencyWeekdays, false},
		{"weekends", "weekends", nil, models.FrequencyWeekends, false},
		{"custom with days", "custom", []time.Weekday{time.Monday}, models.FrequencyCustom, false},
		{"case insensitive", "DAILY", nil, models.FrequencyDaily, false},
		{"custom without days", "custom", nil, "", true},
		{"days with non-custom type", "daily", []time.Weekday{time.Monday}, "", true},
		{"unknown type", "fortnightly", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrequency(tt.freqType, tt.days)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFrequency() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", got.Type(), tt.wantType)
			}
		})
	}
}
