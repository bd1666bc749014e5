package models

import "time"

// Habit represents a recurring practice to track. CurrentStreak and
// LongestStreak are cached derived values; the tracker recomputes them
// on every mutation that touches CompletedDates or Frequency, and no
// other code path may set them.
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	GroupID        string    `json:"group_id"`
	Frequency      Frequency `json:"frequency"`
	CompletedDates []string  `json:"completed_dates"` // YYYY-MM-DD, unique, unordered
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	CreatedAt      time.Time `json:"created_at"`
	Order          int       `json:"order"` // unique within the group
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// HabitGroup is a named collection of habits.
type HabitGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Order int    `json:"order"` // unique across groups
}
