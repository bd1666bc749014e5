package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustom(t *testing.T) {
	tests := []struct {
		name     string
		days     []time.Weekday
		wantDays []time.Weekday
		wantErr  bool
	}{
		{
			name:     "single day",
			days:     []time.Weekday{time.Monday},
			wantDays: []time.Weekday{time.Monday},
		},
		{
			name:     "duplicates dropped and sorted",
			days:     []time.Weekday{time.Friday, time.Monday, time.Friday},
			wantDays: []time.Weekday{time.Monday, time.Friday},
		},
		{
			name:    "empty set rejected",
			days:    nil,
			wantErr: true,
		},
		{
			name:    "out of range rejected",
			days:    []time.Weekday{time.Weekday(7)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Custom(tt.days...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Custom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got := f.CustomDays()
			if len(got) != len(tt.wantDays) {
				t.Fatalf("CustomDays() = %v, want %v", got, tt.wantDays)
			}
			for i := range got {
				if got[i] != tt.wantDays[i] {
					t.Errorf("CustomDays()[%d] = %v, want %v", i, got[i], tt.wantDays[i])
				}
			}
		})
	}
}

func TestFrequencyZeroValueIsDaily(t *testing.T) {
	var f Frequency
	if f.Type() != FrequencyDaily {
		t.Errorf("zero value Type() = %q, want %q", f.Type(), FrequencyDaily)
	}
}

func TestFrequencyJSONRoundTrip(t *testing.T) {
	custom, err := Custom(time.Monday, time.Wednesday, time.Friday)
	if err != nil {
		t.Fatalf("Custom() error: %v", err)
	}

	tests := []struct {
		name string
		freq Frequency
	}{
		{"daily", Daily()},
		{"weekdays", Weekdays()},
		{"weekends", Weekends()},
		{"custom", custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.freq)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			var got Frequency
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if got.Type() != tt.freq.Type() {
				t.Errorf("Type() = %q, want %q", got.Type(), tt.freq.Type())
			}
			want := tt.freq.CustomDays()
			have := got.CustomDays()
			if len(have) != len(want) {
				t.Fatalf("CustomDays() = %v, want %v", have, want)
			}
			for i := range have {
				if have[i] != want[i] {
					t.Errorf("CustomDays()[%d] = %v, want %v", i, have[i], want[i])
				}
			}
		})
	}
}

func TestFrequencyUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType FrequencyType
		wantErr  bool
	}{
		{
			name:     "missing type reads as daily",
			input:    `{}`,
			wantType: FrequencyDaily,
		},
		{
			name:     "legacy empty custom set tolerated",
			input:    `{"type":"custom"}`,
			wantType: FrequencyCustom,
		},
		{
			name:    "unknown type rejected",
			input:   `{"type":"biweekly"}`,
			wantErr: true,
		},
		{
			name:    "weekday index out of range",
			input:   `{"type":"custom","custom_days":[7]}`,
			wantErr: true,
		},
		{
			name:    "negative weekday index",
			input:   `{"type":"custom","custom_days":[-1]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Frequency
			err := json.Unmarshal([]byte(tt.input), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && f.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", f.Type(), tt.wantType)
			}
		})
	}
}

func TestFrequencyContains(t *testing.T) {
	f, err := Custom(time.Tuesday, time.Thursday)
	if err != nil {
		t.Fatalf("Custom() error: %v", err)
	}
	if !f.Contains(time.Tuesday) {
		t.Error("Contains(Tuesday) = false, want true")
	}
	if f.Contains(time.Monday) {
		t.Error("Contains(Monday) = true, want false")
	}
}
