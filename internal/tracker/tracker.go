// Package tracker owns the canonical habit, group and reward
// collections and mediates every state transition. Mutations that touch
// a habit's completion set or frequency recompute its cached streak
// pair before returning, and completion toggles additionally run the
// reward-unlock evaluation. Operations on ids that do not exist are
// silent no-ops.
package tracker

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/streak"
	"github.com/ksolberg/habitkit/internal/utils"
)

// Direction selects which way a habit moves within its group.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Tracker wraps a State with mutation entry points. It is not safe for
// concurrent use; every operation runs to completion within a single
// interaction.
type Tracker struct {
	state models.State
	now   func() time.Time
}

// New returns a tracker over the given state.
func New(state models.State) *Tracker {
	return &Tracker{state: state, now: time.Now}
}

// State returns the tracker's current state for persistence.
func (t *Tracker) State() models.State {
	return t.state
}

func (t *Tracker) today() utils.Date {
	return utils.DateOf(t.now())
}

// recompute refreshes the habit's cached streak pair from its
// completion set and frequency rule.
func (t *Tracker) recompute(h *models.Habit) {
	res := streak.Calculate(h.Frequency, h.CompletedDates, t.today())
	h.CurrentStreak = res.Current
	h.LongestStreak = res.Longest
}

// AddGroup creates a group ordered after all existing groups.
func (t *Tracker) AddGroup(name, icon, color string) models.HabitGroup {
	g := models.HabitGroup{
		ID:    uuid.New().String(),
		Name:  name,
		Icon:  icon,
		Color: color,
		Order: t.nextGroupOrder(),
	}
	t.state.Groups = append(t.state.Groups, g)
	return g
}

// GroupUpdate is a partial update for a group. Order is not settable;
// use ReorderGroups.
type GroupUpdate struct {
	Name  *string
	Icon  *string
	Color *string
}

// UpdateGroup applies the non-nil fields of upd to the group.
func (t *Tracker) UpdateGroup(id string, upd GroupUpdate) {
	for i := range t.state.Groups {
		g := &t.state.Groups[i]
		if g.ID != id {
			continue
		}
		if upd.Name != nil {
			g.Name = *upd.Name
		}
		if upd.Icon != nil {
			g.Icon = *upd.Icon
		}
		if upd.Color != nil {
			g.Color = *upd.Color
		}
		return
	}
}

// RemoveGroup deletes the group and cascades to every habit in it.
func (t *Tracker) RemoveGroup(id string) {
	groups := t.state.Groups[:0]
	for _, g := range t.state.Groups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	t.state.Groups = groups

	habits := t.state.Habits[:0]
	for _, h := range t.state.Habits {
		if h.GroupID != id {
			habits = append(habits, h)
		}
	}
	t.state.Habits = habits
}

// ReorderGroups reassigns group order by position in ids. Unknown ids
// are skipped; groups not mentioned keep their relative order after the
// listed ones.
func (t *Tracker) ReorderGroups(ids []string) {
	next := 0
	listed := make(map[string]bool, len(ids))
	for _, id := range ids {
		for i := range t.state.Groups {
			if t.state.Groups[i].ID == id {
				t.state.Groups[i].Order = next
				listed[id] = true
				next++
				break
			}
		}
	}
	rest := make([]*models.HabitGroup, 0)
	for i := range t.state.Groups {
		if !listed[t.state.Groups[i].ID] {
			rest = append(rest, &t.state.Groups[i])
		}
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Order < rest[j].Order })
	for _, g := range rest {
		g.Order = next
		next++
	}
}

// AddHabit creates a habit in the given group, ordered after the
// group's existing habits.
func (t *Tracker) AddHabit(name, icon, color, groupID string, freq models.Frequency) models.Habit {
	h := models.Habit{
		ID:             uuid.New().String(),
		Name:           name,
		Icon:           icon,
		Color:          color,
		GroupID:        groupID,
		Frequency:      freq,
		CompletedDates: []string{},
		CreatedAt:      t.now(),
		Order:          t.nextHabitOrder(groupID),
	}
	t.state.Habits = append(t.state.Habits, h)
	return h
}

// HabitUpdate is a partial update for a habit. There are deliberately
// no streak fields here: streaks are derived values the tracker
// recomputes itself.
type HabitUpdate struct {
	Name      *string
	Icon      *string
	Color     *string
	GroupID   *string
	Frequency *models.Frequency
}

// UpdateHabit applies the non-nil fields of upd. Changing the frequency
// retroactively changes which days were due, so both streak values are
// recomputed even though the completion set is untouched.
func (t *Tracker) UpdateHabit(id string, upd HabitUpdate) {
	for i := range t.state.Habits {
		h := &t.state.Habits[i]
		if h.ID != id {
			continue
		}
		if upd.Name != nil {
			h.Name = *upd.Name
		}
		if upd.Icon != nil {
			h.Icon = *upd.Icon
		}
		if upd.Color != nil {
			h.Color = *upd.Color
		}
		if upd.GroupID != nil {
			h.GroupID = *upd.GroupID
		}
		if upd.Frequency != nil {
			h.Frequency = *upd.Frequency
			t.recompute(h)
		}
		return
	}
}

// RemoveHabit deletes the habit.
func (t *Tracker) RemoveHabit(id string) {
	habits := t.state.Habits[:0]
	for _, h := range t.state.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	t.state.Habits = habits
}

// MoveHabit reassigns the habit to another group, ordered after that
// group's existing habits.
func (t *Tracker) MoveHabit(id, newGroupID string) {
	for i := range t.state.Habits {
		h := &t.state.Habits[i]
		if h.ID != id {
			continue
		}
		if h.GroupID == newGroupID {
			return
		}
		h.Order = t.nextHabitOrder(newGroupID)
		h.GroupID = newGroupID
		return
	}
}

// ReorderHabit swaps the habit's order with its adjacent sibling in the
// requested direction. Moving the first habit up or the last one down
// is a no-op.
func (t *Tracker) ReorderHabit(id string, dir Direction) {
	var target *models.Habit
	for i := range t.state.Habits {
		if t.state.Habits[i].ID == id {
			target = &t.state.Habits[i]
			break
		}
	}
	if target == nil {
		return
	}

	siblings := make([]*models.Habit, 0)
	for i := range t.state.Habits {
		if t.state.Habits[i].GroupID == target.GroupID {
			siblings = append(siblings, &t.state.Habits[i])
		}
	}
	sort.Slice(siblings, func(i, j int) bool { return siblings[i].Order < siblings[j].Order })

	idx := -1
	for i, h := range siblings {
		if h.ID == id {
			idx = i
			break
		}
	}

	var other int
	switch dir {
	case MoveUp:
		other = idx - 1
	case MoveDown:
		other = idx + 1
	default:
		return
	}
	if other < 0 || other >= len(siblings) {
		return
	}
	siblings[idx].Order, siblings[other].Order = siblings[other].Order, siblings[idx].Order
}

// ToggleHabitCompletion flips the date's membership in the habit's
// completion set, recomputes that habit's streaks, and runs reward
// evaluation. It returns the ids of any newly unlocked rewards.
func (t *Tracker) ToggleHabitCompletion(id, date string) []string {
	for i := range t.state.Habits {
		h := &t.state.Habits[i]
		if h.ID != id {
			continue
		}
		if h.CompletedOn(date) {
			dates := h.CompletedDates[:0]
			for _, d := range h.CompletedDates {
				if d != date {
					dates = append(dates, d)
				}
			}
			h.CompletedDates = dates
		} else {
			h.CompletedDates = append(h.CompletedDates, date)
		}
		t.recompute(h)
		return t.unlockRewards()
	}
	return nil
}

// ToggleDarkMode flips the dark-mode flag and swaps the default
// background color to match.
func (t *Tracker) ToggleDarkMode() {
	s := &t.state.Settings
	s.DarkMode = !s.DarkMode
	if s.DarkMode {
		s.BackgroundColor = "#191919"
	} else {
		s.BackgroundColor = "#FFFFFF"
	}
}

// SetBackground replaces the background style.
func (t *Tracker) SetBackground(bt models.BackgroundType, color string, gradientColors []string) {
	t.state.Settings.BackgroundType = bt
	t.state.Settings.BackgroundColor = color
	t.state.Settings.GradientColors = gradientColors
}

// Settings returns the current presentation settings.
func (t *Tracker) Settings() models.AppSettings {
	return t.state.Settings
}

func (t *Tracker) nextGroupOrder() int {
	next := 0
	for _, g := range t.state.Groups {
		if g.Order >= next {
			next = g.Order + 1
		}
	}
	return next
}

func (t *Tracker) nextHabitOrder(groupID string) int {
	next := 0
	for _, h := range t.state.Habits {
		if h.GroupID == groupID && h.Order >= next {
			next = h.Order + 1
		}
	}
	return next
}
