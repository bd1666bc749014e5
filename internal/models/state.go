package models

// State is the full persisted document: every collection the tracker
// owns plus presentation settings. Reloading a saved State and
// re-evaluating it yields the same streak and unlock results, since the
// derived streak fields are stored verbatim and recomputable.
type State struct {
	Habits          []Habit      `json:"habits"`
	Groups          []HabitGroup `json:"groups"`
	Rewards         []Reward     `json:"rewards"`
	UnlockedRewards []string     `json:"unlocked_rewards"`
	Settings        AppSettings  `json:"settings"`
}

// DefaultState returns the first-run state: three starter groups, the
// five built-in milestone rewards, and dark-mode defaults.
func DefaultState() State {
	return State{
		Habits: []Habit{},
		Groups: []HabitGroup{
			{ID: "morning", Name: "Morning Routine", Icon: "sunny", Color: "#FBBF24", Order: 0},
			{ID: "study", Name: "Study Habits", Icon: "book", Color: "#4D94FF", Order: 1},
			{ID: "night", Name: "Night Routine", Icon: "moon", Color: "#A78BFA", Order: 2},
		},
		Rewards: []Reward{
			{ID: "1", Title: "First Step", Description: "Complete your first habit", StreakRequired: 1, Icon: "star"},
			{ID: "2", Title: "Getting Started", Description: "Achieve a 3-day streak", StreakRequired: 3, Icon: "flame"},
			{ID: "3", Title: "Week Warrior", Description: "Achieve a 7-day streak", StreakRequired: 7, Icon: "trophy"},
			{ID: "4", Title: "Habit Builder", Description: "Achieve a 14-day streak", StreakRequired: 14, Icon: "medal"},
			{ID: "5", Title: "Unstoppable", Description: "Achieve a 30-day streak", StreakRequired: 30, Icon: "ribbon"},
		},
		UnlockedRewards: []string{},
		Settings: AppSettings{
			DarkMode:        true,
			BackgroundType:  BackgroundSolid,
			BackgroundColor: "#191919",
		},
	}
}
