package tracker

import (
	"sort"

	"github.com/ksolberg/habitkit/internal/constants"
	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/streak"
)

// Progress counts habits due today against those also completed today.
type Progress struct {
	Completed int
	Total     int
}

// GroupProgress is today's progress scoped to one group.
type GroupProgress struct {
	Completed  int
	Total      int
	Percentage float64
}

// GroupStats summarizes a group over the trailing 30 calendar days.
// WeeklyCompletions buckets completions from the most recent 7 days by
// calendar weekday (0 = Sunday .. 6 = Saturday).
type GroupStats struct {
	TotalHabits       int
	CompletionRate    float64
	BestStreak        int
	TotalCompletions  int
	WeeklyCompletions [7]int
}

// Groups returns all groups sorted by display order.
func (t *Tracker) Groups() []models.HabitGroup {
	groups := make([]models.HabitGroup, len(t.state.Groups))
	copy(groups, t.state.Groups)
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	return groups
}

// Group looks up a group by id.
func (t *Tracker) Group(id string) (models.HabitGroup, bool) {
	for _, g := range t.state.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.HabitGroup{}, false
}

// Habit looks up a habit by id.
func (t *Tracker) Habit(id string) (models.Habit, bool) {
	for _, h := range t.state.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Habits returns all habits.
func (t *Tracker) Habits() []models.Habit {
	return t.state.Habits
}

// HabitsInGroup returns the group's habits sorted by display order.
func (t *Tracker) HabitsInGroup(groupID string) []models.Habit {
	var habits []models.Habit
	for _, h := range t.state.Habits {
		if h.GroupID == groupID {
			habits = append(habits, h)
		}
	}
	sort.SliceStable(habits, func(i, j int) bool { return habits[i].Order < habits[j].Order })
	return habits
}

// IsHabitDueOnDate reports whether the habit is due on the given
// YYYY-MM-DD date.
func (t *Tracker) IsHabitDueOnDate(h models.Habit, date string) bool {
	return streak.IsDueOn(h.Frequency, date)
}

// TodayProgress counts habits due today and those completed today.
func (t *Tracker) TodayProgress() Progress {
	today := t.today()
	var p Progress
	for _, h := range t.state.Habits {
		if !streak.IsDue(h.Frequency, today) {
			continue
		}
		p.Total++
		if h.CompletedOn(today.String()) {
			p.Completed++
		}
	}
	return p
}

// GroupProgress counts the group's due-today habits and those completed
// today. The percentage is 0 when nothing is due.
func (t *Tracker) GroupProgress(groupID string) GroupProgress {
	today := t.today()
	var p GroupProgress
	for _, h := range t.state.Habits {
		if h.GroupID != groupID || !streak.IsDue(h.Frequency, today) {
			continue
		}
		p.Total++
		if h.CompletedOn(today.String()) {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// GroupStats scans the trailing 30 calendar days (today included) for
// the group's habits. The completion rate guards against a zero due
// count; the weekday histogram only accumulates the most recent 7 days.
func (t *Tracker) GroupStats(groupID string) GroupStats {
	habits := t.HabitsInGroup(groupID)
	stats := GroupStats{TotalHabits: len(habits)}

	today := t.today()
	due, completed := 0, 0
	for i := 0; i < constants.StatsWindowDays; i++ {
		date := today.AddDays(-i)
		dateStr := date.String()
		weekday := int(date.Weekday())
		for _, h := range habits {
			if !streak.IsDue(h.Frequency, date) {
				continue
			}
			due++
			if h.CompletedOn(dateStr) {
				completed++
				if i < constants.WeeklyWindowDays {
					stats.WeeklyCompletions[weekday]++
				}
			}
		}
	}

	if due > 0 {
		stats.CompletionRate = float64(completed) / float64(due) * 100
	}
	for _, h := range habits {
		if h.LongestStreak > stats.BestStreak {
			stats.BestStreak = h.LongestStreak
		}
		stats.TotalCompletions += len(h.CompletedDates)
	}
	return stats
}
