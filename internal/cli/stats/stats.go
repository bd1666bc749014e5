package stats

import (
	"fmt"
	"strings"

	"github.com/ksolberg/habitkit/internal/cli"
	"github.com/ksolberg/habitkit/internal/constants"
)

type StatsCmd struct {
	Today TodayCmd `cmd:"" help:"Show today's completion progress."`
	Group GroupCmd `cmd:"" help:"Show aggregate statistics for a group."`
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}
	p := tr.TodayProgress()
	if p.Total == 0 {
		fmt.Println("Nothing due today.")
		return nil
	}
	fmt.Printf("Today: %d/%d completed\n", p.Completed, p.Total)
	for _, g := range tr.Groups() {
		gp := tr.GroupProgress(g.ID)
		if gp.Total == 0 {
			continue
		}
		fmt.Printf("  %-20s %d/%d (%.0f%%)\n", g.Name, gp.Completed, gp.Total, gp.Percentage)
	}
	return nil
}

type GroupCmd struct {
	Group string `arg:"" help:"Group name or id."`
}

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (c *GroupCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}
	g, err := ctx.FindGroup(tr, c.Group)
	if err != nil {
		return err
	}

	s := tr.GroupStats(g.ID)
	fmt.Printf("Stats for %s (last %d days):\n", g.Name, constants.StatsWindowDays)
	fmt.Printf("  Habits:            %d\n", s.TotalHabits)
	fmt.Printf("  Completion rate:   %.0f%%\n", s.CompletionRate)
	fmt.Printf("  Best streak:       %d\n", s.BestStreak)
	fmt.Printf("  Total completions: %d\n", s.TotalCompletions)

	fmt.Println("\n  This week:")
	peak := 0
	for _, n := range s.WeeklyCompletions {
		if n > peak {
			peak = n
		}
	}
	for wd := 0; wd < 7; wd++ {
		fmt.Printf("    %s %s %d\n", dayLabels[wd], weekBar(s.WeeklyCompletions[wd], peak), s.WeeklyCompletions[wd])
	}
	return nil
}

// weekBar renders count block cells padded with spaces to peak columns.
// Padding is by cell count, not bytes; the block rune is multi-byte.
func weekBar(count, peak int) string {
	return strings.Repeat("█", count) + strings.Repeat(" ", peak-count)
}
