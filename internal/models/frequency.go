package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// FrequencyType names a habit recurrence rule.
type FrequencyType string

const (
	FrequencyDaily    FrequencyType = "daily"
	FrequencyWeekdays FrequencyType = "weekdays"
	FrequencyWeekends FrequencyType = "weekends"
	FrequencyCustom   FrequencyType = "custom"
)

// Frequency is a habit's recurrence rule. The zero value means daily.
// Custom weekday sets are only reachable through Custom, which rejects
// an empty set, so the invariant "custom implies at least one weekday"
// holds for every rule built in-process. Legacy stored data may still
// carry an empty custom set; such a rule is never due.
type Frequency struct {
	kind FrequencyType
	days []time.Weekday
}

// Daily returns the every-day rule.
func Daily() Frequency {
	return Frequency{kind: FrequencyDaily}
}

// Weekdays returns the Monday-through-Friday rule.
func Weekdays() Frequency {
	return Frequency{kind: FrequencyWeekdays}
}

// Weekends returns the Saturday-and-Sunday rule.
func Weekends() Frequency {
	return Frequency{kind: FrequencyWeekends}
}

// Custom returns a rule due on exactly the given weekdays. Duplicates
// are dropped; at least one weekday is required.
func Custom(days ...time.Weekday) (Frequency, error) {
	if len(days) == 0 {
		return Frequency{}, fmt.Errorf("custom frequency requires at least one weekday")
	}
	seen := make(map[time.Weekday]bool, len(days))
	uniq := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return Frequency{}, fmt.Errorf("invalid weekday %d", d)
		}
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return Frequency{kind: FrequencyCustom, days: uniq}, nil
}

// Type returns the rule's kind. The zero value reads as daily.
func (f Frequency) Type() FrequencyType {
	if f.kind == "" {
		return FrequencyDaily
	}
	return f.kind
}

// CustomDays returns a copy of the custom weekday set, sorted ascending.
// Empty for non-custom rules.
func (f Frequency) CustomDays() []time.Weekday {
	if len(f.days) == 0 {
		return nil
	}
	out := make([]time.Weekday, len(f.days))
	copy(out, f.days)
	return out
}

// Contains reports whether the custom set includes the given weekday.
func (f Frequency) Contains(wd time.Weekday) bool {
	for _, d := range f.days {
		if d == wd {
			return true
		}
	}
	return false
}

type frequencyWire struct {
	Type       FrequencyType `json:"type"`
	CustomDays []int         `json:"custom_days,omitempty"`
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	w := frequencyWire{Type: f.Type()}
	for _, d := range f.days {
		w.CustomDays = append(w.CustomDays, int(d))
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts stored rules. An empty custom set is tolerated
// for compatibility with older stores; unknown types and out-of-range
// weekday indices are rejected.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var w frequencyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Type {
	case "", FrequencyDaily:
		*f = Daily()
		return nil
	case FrequencyWeekdays:
		*f = Weekdays()
		return nil
	case FrequencyWeekends:
		*f = Weekends()
		return nil
	case FrequencyCustom:
		if len(w.CustomDays) == 0 {
			*f = Frequency{kind: FrequencyCustom}
			return nil
		}
		days := make([]time.Weekday, 0, len(w.CustomDays))
		for _, d := range w.CustomDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("invalid weekday index %d", d)
			}
			days = append(days, time.Weekday(d))
		}
		freq, err := Custom(days...)
		if err != nil {
			return err
		}
		*f = freq
		return nil
	default:
		return fmt.Errorf("unknown frequency type %q", w.Type)
	}
}
