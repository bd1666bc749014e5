// Package validation holds the input checks the CLI applies before
// anything reaches the tracker. The tracker itself assumes well-formed
// input and stays total; misuse is caught here at the boundary.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/utils"
)

// ValidateDate checks that s is a well-formed YYYY-MM-DD date string.
func ValidateDate(s string) error {
	if !utils.ValidDate(s) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateName checks that a display name is non-empty.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

// ValidateStreakThreshold checks that a reward threshold is a positive
// day count.
func ValidateStreakThreshold(days int) error {
	if days < 1 {
		return fmt.Errorf("streak threshold must be at least 1 day, got %d", days)
	}
	return nil
}

// ParseFrequency maps CLI input to a frequency rule. Custom rules
// require at least one weekday; other types must not carry any.
func ParseFrequency(freqType string, days []time.Weekday) (models.Frequency, error) {
	kind := models.FrequencyType(strings.ToLower(freqType))
	if kind != models.FrequencyCustom && len(days) > 0 {
		return models.Frequency{}, fmt.Errorf("weekdays can only be given with the custom frequency")
	}
	switch kind {
	case models.FrequencyDaily:
		return models.Daily(), nil
	case models.FrequencyWeekdays:
		return models.Weekdays(), nil
	case models.FrequencyWeekends:
		return models.Weekends(), nil
	case models.FrequencyCustom:
		return models.Custom(days...)
	default:
		return models.Frequency{}, fmt.Errorf("unknown frequency %q (expected daily, weekdays, weekends or custom)", freqType)
	}
}
