package streak

import (
	"time"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/utils"
)

// IsDue reports whether a habit with the given frequency rule is
// expected to be performed on the given calendar date. The decision
// depends on the date's day of week only.
func IsDue(freq models.Frequency, date utils.Date) bool {
	switch freq.Type() {
	case models.FrequencyWeekdays:
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	case models.FrequencyWeekends:
		wd := date.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case models.FrequencyCustom:
		// An empty custom set (possible in legacy data) is never due.
		return freq.Contains(date.Weekday())
	default:
		return true
	}
}

// IsDueOn is the raw-string convenience for callers holding YYYY-MM-DD
// values. A malformed date is never due.
func IsDueOn(freq models.Frequency, date string) bool {
	d, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	return IsDue(freq, d)
}
