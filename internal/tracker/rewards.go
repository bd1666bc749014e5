package tracker

import (
	"github.com/google/uuid"

	"github.com/ksolberg/habitkit/internal/models"
)

// EvaluateUnlocks returns the ids of rewards whose threshold is met by
// the best current streak across all habits and that are not already in
// unlocked. Unlocking is one-way: callers only ever append the result,
// so a reward stays unlocked even if the qualifying streak later drops.
func EvaluateUnlocks(habits []models.Habit, rewards []models.Reward, unlocked []string) []string {
	maxStreak := 0
	for _, h := range habits {
		if h.CurrentStreak > maxStreak {
			maxStreak = h.CurrentStreak
		}
	}

	already := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		already[id] = true
	}

	var newly []string
	for _, r := range rewards {
		if maxStreak >= r.StreakRequired && !already[r.ID] {
			newly = append(newly, r.ID)
		}
	}
	return newly
}

// unlockRewards applies EvaluateUnlocks to the tracker state, stamping
// each newly unlocked reward's UnlockedAt exactly once.
func (t *Tracker) unlockRewards() []string {
	newly := EvaluateUnlocks(t.state.Habits, t.state.Rewards, t.state.UnlockedRewards)
	if len(newly) == 0 {
		return nil
	}
	t.state.UnlockedRewards = append(t.state.UnlockedRewards, newly...)
	now := t.now()
	for _, id := range newly {
		for i := range t.state.Rewards {
			r := &t.state.Rewards[i]
			if r.ID == id && r.UnlockedAt == nil {
				ts := now
				r.UnlockedAt = &ts
			}
		}
	}
	return newly
}

// AddCustomReward creates a user-defined reward.
func (t *Tracker) AddCustomReward(title, description string, streakRequired int, icon string) models.Reward {
	r := models.Reward{
		ID:             uuid.New().String(),
		Title:          title,
		Description:    description,
		StreakRequired: streakRequired,
		Icon:           icon,
		IsCustom:       true,
	}
	t.state.Rewards = append(t.state.Rewards, r)
	return r
}

// RewardUpdate is a partial update for a reward. The unlock timestamp
// is not settable; it is stamped by the evaluator.
type RewardUpdate struct {
	Title          *string
	Description    *string
	Icon           *string
	StreakRequired *int
}

// UpdateReward applies the non-nil fields of upd to the reward.
func (t *Tracker) UpdateReward(id string, upd RewardUpdate) {
	for i := range t.state.Rewards {
		r := &t.state.Rewards[i]
		if r.ID != id {
			continue
		}
		if upd.Title != nil {
			r.Title = *upd.Title
		}
		if upd.Description != nil {
			r.Description = *upd.Description
		}
		if upd.Icon != nil {
			r.Icon = *upd.Icon
		}
		if upd.StreakRequired != nil {
			r.StreakRequired = *upd.StreakRequired
		}
		return
	}
}

// RemoveReward deletes the reward and drops its id from the unlocked
// set. That is entity removal, not re-locking; protecting built-in
// rewards from deletion is the caller's concern.
func (t *Tracker) RemoveReward(id string) {
	rewards := t.state.Rewards[:0]
	for _, r := range t.state.Rewards {
		if r.ID != id {
			rewards = append(rewards, r)
		}
	}
	t.state.Rewards = rewards

	unlocked := t.state.UnlockedRewards[:0]
	for _, rid := range t.state.UnlockedRewards {
		if rid != id {
			unlocked = append(unlocked, rid)
		}
	}
	t.state.UnlockedRewards = unlocked
}

// Rewards returns all rewards.
func (t *Tracker) Rewards() []models.Reward {
	return t.state.Rewards
}

// Reward looks up a reward by id.
func (t *Tracker) Reward(id string) (models.Reward, bool) {
	for _, r := range t.state.Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}

// IsUnlocked reports whether the reward id is in the unlocked set.
func (t *Tracker) IsUnlocked(id string) bool {
	for _, rid := range t.state.UnlockedRewards {
		if rid == id {
			return true
		}
	}
	return false
}
