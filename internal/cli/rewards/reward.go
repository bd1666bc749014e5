package rewards

import (
	"fmt"

	"github.com/ksolberg/habitkit/internal/cli"
	"github.com/ksolberg/habitkit/internal/tracker"
	"github.com/ksolberg/habitkit/internal/validation"
)

type RewardCmd struct {
	Add    RewardAddCmd    `cmd:"" help:"Add a custom reward."`
	List   RewardListCmd   `cmd:"" help:"List rewards and their unlock status."`
	Edit   RewardEditCmd   `cmd:"" help:"Edit a custom reward."`
	Delete RewardDeleteCmd `cmd:"" help:"Delete a custom reward."`
}

type RewardAddCmd struct {
	Title       string `arg:"" help:"Reward title."`
	Streak      int    `arg:"" help:"Streak length required to unlock."`
	Description string `help:"Reward description."`
	Icon        string `help:"Icon token." default:"gift"`
}

func (c *RewardAddCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateName(c.Title); err != nil {
		return err
	}
	if err := validation.ValidateStreakThreshold(c.Streak); err != nil {
		return err
	}
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		r := tr.AddCustomReward(c.Title, c.Description, c.Streak, c.Icon)
		fmt.Printf("Added reward %q (unlocks at a %d-day streak)\n", r.Title, r.StreakRequired)
		return nil
	})
}

type RewardListCmd struct {
	Unlocked bool `help:"Only show unlocked rewards."`
}

func (c *RewardListCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}
	rewards := tr.Rewards()
	if len(rewards) == 0 {
		fmt.Println("No rewards found.")
		return nil
	}
	for _, r := range rewards {
		unlocked := tr.IsUnlocked(r.ID)
		if c.Unlocked && !unlocked {
			continue
		}
		status := "locked"
		if unlocked {
			status = "unlocked"
			if r.UnlockedAt != nil {
				status = fmt.Sprintf("unlocked %s", r.UnlockedAt.Format("2006-01-02"))
			}
		}
		kind := ""
		if r.IsCustom {
			kind = " (custom)"
		}
		fmt.Printf("%-20s %3d-day streak  %s%s\n", r.Title, r.StreakRequired, status, kind)
	}
	return nil
}

type RewardEditCmd struct {
	Reward      string  `arg:"" help:"Reward title or id."`
	Title       *string `help:"New title."`
	Description *string `help:"New description."`
	Icon        *string `help:"New icon token."`
	Streak      *int    `help:"New streak requirement."`
}

func (c *RewardEditCmd) Run(ctx *cli.Context) error {
	if c.Title != nil {
		if err := validation.ValidateName(*c.Title); err != nil {
			return err
		}
	}
	if c.Streak != nil {
		if err := validation.ValidateStreakThreshold(*c.Streak); err != nil {
			return err
		}
	}
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		r, err := ctx.FindReward(tr, c.Reward)
		if err != nil {
			return err
		}
		if !r.IsCustom {
			return fmt.Errorf("reward %q is built in and cannot be edited", r.Title)
		}
		tr.UpdateReward(r.ID, tracker.RewardUpdate{
			Title:          c.Title,
			Description:    c.Description,
			Icon:           c.Icon,
			StreakRequired: c.Streak,
		})
		updated, _ := tr.Reward(r.ID)
		fmt.Printf("Updated reward: %s\n", updated.Title)
		return nil
	})
}

type RewardDeleteCmd struct {
	Reward string `arg:"" help:"Reward title or id."`
}

func (c *RewardDeleteCmd) Run(ctx *cli.Context) error {
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		r, err := ctx.FindReward(tr, c.Reward)
		if err != nil {
			return err
		}
		if !r.IsCustom {
			return fmt.Errorf("reward %q is built in and cannot be deleted", r.Title)
		}
		tr.RemoveReward(r.ID)
		fmt.Printf("Deleted reward: %s\n", r.Title)
		return nil
	})
}
