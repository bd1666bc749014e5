package models

import "time"

// Reward is a streak milestone. Built-in rewards (IsCustom false) are
// seeded at first run and cannot be deleted through the CLI. UnlockedAt
// is stamped the first time the reward unlocks and never changes after.
type Reward struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	StreakRequired int        `json:"streak_required"` // days
	Icon           string     `json:"icon"`
	IsCustom       bool       `json:"is_custom"`
	UnlockedAt     *time.Time `json:"unlocked_at,omitempty"`
}
