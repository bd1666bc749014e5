package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ksolberg/habitkit/internal/backup"
	"github.com/ksolberg/habitkit/internal/logger"
	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/storage"
	"github.com/ksolberg/habitkit/internal/tracker"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// Tracker returns a tracker over the currently loaded state, for
// read-only queries.
func (c *Context) Tracker() (*tracker.Tracker, error) {
	state, err := c.Store.State()
	if err != nil {
		return nil, err
	}
	return tracker.New(state), nil
}

// WithTracker loads the current state, runs fn over a tracker, and
// persists the resulting state when fn succeeds.
func (c *Context) WithTracker(fn func(*tracker.Tracker) error) error {
	state, err := c.Store.State()
	if err != nil {
		return err
	}
	tr := tracker.New(state)
	if err := fn(tr); err != nil {
		return err
	}
	return c.Store.SaveState(tr.State())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindGroup resolves a group by id or (case-insensitive) name.
func (c *Context) FindGroup(tr *tracker.Tracker, ref string) (models.HabitGroup, error) {
	if g, ok := tr.Group(ref); ok {
		return g, nil
	}
	for _, g := range tr.Groups() {
		if strings.EqualFold(g.Name, ref) {
			return g, nil
		}
	}
	return models.HabitGroup{}, fmt.Errorf("group %q not found", ref)
}

// FindHabit resolves a habit by id or (case-insensitive) name.
func (c *Context) FindHabit(tr *tracker.Tracker, ref string) (models.Habit, error) {
	if h, ok := tr.Habit(ref); ok {
		return h, nil
	}
	for _, h := range tr.Habits() {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// FindReward resolves a reward by id or (case-insensitive) title.
func (c *Context) FindReward(tr *tracker.Tracker, ref string) (models.Reward, error) {
	if r, ok := tr.Reward(ref); ok {
		return r, nil
	}
	for _, r := range tr.Rewards() {
		if strings.EqualFold(r.Title, ref) {
			return r, nil
		}
	}
	return models.Reward{}, fmt.Errorf("reward %q not found", ref)
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// FormatFrequency formats a frequency rule into a human-readable string
func FormatFrequency(freq models.Frequency) string {
	switch freq.Type() {
	case models.FrequencyWeekdays:
		return "weekdays"
	case models.FrequencyWeekends:
		return "weekends"
	case models.FrequencyCustom:
		var days []string
		for _, wd := range freq.CustomDays() {
			days = append(days, wd.String()[:3])
		}
		if len(days) == 0 {
			return "custom (no days)"
		}
		return "custom on " + strings.Join(days, ",")
	default:
		return "daily"
	}
}
