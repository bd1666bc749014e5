package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ksolberg/habitkit/internal/cli"
	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/tracker"
	"github.com/ksolberg/habitkit/internal/utils"
	"github.com/ksolberg/habitkit/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	Move   HabitMoveCmd   `cmd:"" help:"Move a habit to another group."`
	Up     HabitUpCmd     `cmd:"" help:"Move a habit up within its group."`
	Down   HabitDownCmd   `cmd:"" help:"Move a habit down within its group."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit history (ASCII grid)."`
}

type HabitAddCmd struct {
	Name      string `arg:"" optional:"" help:"Habit name (omit for interactive mode)."`
	Group     string `help:"Group name or id." default:"morning"`
	Frequency string `help:"daily, weekdays, weekends or custom." default:"daily"`
	Days      string `help:"Comma-separated weekdays for the custom frequency (e.g. mon,wed,fri)."`
	Icon      string `help:"Icon token." default:"star"`
	Color     string `help:"Color token." default:"#4D94FF"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		if err := c.runForm(ctx); err != nil {
			return err
		}
	}
	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}

	days, err := cli.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}
	freq, err := validation.ParseFrequency(c.Frequency, days)
	if err != nil {
		return err
	}

	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		group, err := ctx.FindGroup(tr, c.Group)
		if err != nil {
			return err
		}
		// Habit names double as CLI references, keep them unique
		for _, h := range tr.Habits() {
			if strings.EqualFold(h.Name, c.Name) {
				return fmt.Errorf("habit with name %q already exists", c.Name)
			}
		}
		h := tr.AddHabit(c.Name, c.Icon, c.Color, group.ID, freq)
		fmt.Printf("Added habit %q to %s (%s)\n", h.Name, group.Name, cli.FormatFrequency(h.Frequency))
		return nil
	})
}

// runForm fills the command fields interactively.
func (c *HabitAddCmd) runForm(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	var groupOptions []huh.Option[string]
	for _, g := range tr.Groups() {
		groupOptions = append(groupOptions, huh.NewOption(g.Name, g.ID))
	}
	if len(groupOptions) == 0 {
		return fmt.Errorf("no groups exist yet, add one with 'habitkit group add'")
	}

	var customDays []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&c.Name).
				Validate(func(s string) error {
					return validation.ValidateName(s)
				}),
			huh.NewSelect[string]().
				Title("Group").
				Options(groupOptions...).
				Value(&c.Group),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekdays (Mon-Fri)", "weekdays"),
					huh.NewOption("Weekends (Sat-Sun)", "weekends"),
					huh.NewOption("Custom days", "custom"),
				).
				Value(&c.Frequency),
			huh.NewMultiSelect[string]().
				Title("Custom days").
				Description("Only used with the custom frequency").
				Options(
					huh.NewOption("Sunday", "sun"),
					huh.NewOption("Monday", "mon"),
					huh.NewOption("Tuesday", "tue"),
					huh.NewOption("Wednesday", "wed"),
					huh.NewOption("Thursday", "thu"),
					huh.NewOption("Friday", "fri"),
					huh.NewOption("Saturday", "sat"),
				).
				Value(&customDays),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}
	if c.Frequency == "custom" {
		c.Days = strings.Join(customDays, ",")
	} else {
		c.Days = ""
	}
	return nil
}

type HabitListCmd struct {
	Group string `help:"Limit to one group (name or id)."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	groups := tr.Groups()
	if c.Group != "" {
		g, err := ctx.FindGroup(tr, c.Group)
		if err != nil {
			return err
		}
		groups = []models.HabitGroup{g}
	}

	shown := 0
	for _, g := range groups {
		habits := tr.HabitsInGroup(g.ID)
		if len(habits) == 0 {
			continue
		}
		fmt.Printf("%s:\n", g.Name)
		for _, h := range habits {
			fmt.Printf("  %-24s %-20s streak %d (best %d)\n",
				h.Name, cli.FormatFrequency(h.Frequency), h.CurrentStreak, h.LongestStreak)
			shown++
		}
	}
	if shown == 0 {
		fmt.Println("No habits found.")
	}
	return nil
}

type HabitEditCmd struct {
	Habit     string  `arg:"" help:"Habit name or id."`
	Name      *string `help:"New name."`
	Icon      *string `help:"New icon token."`
	Color     *string `help:"New color token."`
	Frequency *string `help:"New frequency: daily, weekdays, weekends or custom."`
	Days      string  `help:"Comma-separated weekdays for the custom frequency."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		h, err := ctx.FindHabit(tr, c.Habit)
		if err != nil {
			return err
		}

		upd := tracker.HabitUpdate{Name: c.Name, Icon: c.Icon, Color: c.Color}
		if c.Name != nil {
			if err := validation.ValidateName(*c.Name); err != nil {
				return err
			}
		}
		if c.Frequency != nil {
			days, err := cli.ParseWeekdays(c.Days)
			if err != nil {
				return err
			}
			freq, err := validation.ParseFrequency(*c.Frequency, days)
			if err != nil {
				return err
			}
			upd.Frequency = &freq
		}

		tr.UpdateHabit(h.ID, upd)
		updated, _ := tr.Habit(h.ID)
		fmt.Printf("Updated habit %q (%s, streak %d)\n",
			updated.Name, cli.FormatFrequency(updated.Frequency), updated.CurrentStreak)
		return nil
	})
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		h, err := ctx.FindHabit(tr, c.Habit)
		if err != nil {
			return err
		}
		tr.RemoveHabit(h.ID)
		fmt.Printf("Deleted habit: %s\n", h.Name)
		return nil
	})
}

type HabitMoveCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Group string `arg:"" help:"Target group name or id."`
}

func (c *HabitMoveCmd) Run(ctx *cli.Context) error {
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		h, err := ctx.FindHabit(tr, c.Habit)
		if err != nil {
			return err
		}
		g, err := ctx.FindGroup(tr, c.Group)
		if err != nil {
			return err
		}
		tr.MoveHabit(h.ID, g.ID)
		fmt.Printf("Moved habit %q to %s\n", h.Name, g.Name)
		return nil
	})
}

type HabitUpCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitUpCmd) Run(ctx *cli.Context) error {
	return reorder(ctx, c.Habit, tracker.MoveUp)
}

type HabitDownCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitDownCmd) Run(ctx *cli.Context) error {
	return reorder(ctx, c.Habit, tracker.MoveDown)
}

func reorder(ctx *cli.Context, ref string, dir tracker.Direction) error {
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		h, err := ctx.FindHabit(tr, ref)
		if err != nil {
			return err
		}
		tr.ReorderHabit(h.ID, dir)
		return nil
	})
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today().String()
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		h, err := ctx.FindHabit(tr, c.Habit)
		if err != nil {
			return err
		}

		unlocked := tr.ToggleHabitCompletion(h.ID, day)
		updated, _ := tr.Habit(h.ID)
		if updated.CompletedOn(day) {
			fmt.Printf("Marked habit %q for %s (streak %d)\n", h.Name, day, updated.CurrentStreak)
		} else {
			fmt.Printf("Unmarked habit %q for %s (streak %d)\n", h.Name, day, updated.CurrentStreak)
		}
		for _, id := range unlocked {
			if r, ok := tr.Reward(id); ok {
				fmt.Printf("🏆 Unlocked reward: %s (%s)\n", r.Title, r.Description)
			}
		}
		return nil
	})
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	today := utils.Today().String()
	fmt.Printf("Habits for %s:\n\n", today)

	due := 0
	for _, g := range tr.Groups() {
		habits := tr.HabitsInGroup(g.ID)
		var dueHabits []models.Habit
		for _, h := range habits {
			if tr.IsHabitDueOnDate(h, today) {
				dueHabits = append(dueHabits, h)
			}
		}
		if len(dueHabits) == 0 {
			continue
		}
		fmt.Printf("%s:\n", g.Name)
		for _, h := range dueHabits {
			status := "[ ]"
			if h.CompletedOn(today) {
				status = "[x]"
			}
			fmt.Printf("  %s %s\n", status, h.Name)
			due++
		}
	}

	if due == 0 {
		fmt.Println("Nothing due today.")
		return nil
	}
	p := tr.TodayProgress()
	fmt.Printf("\nCompleted: %d/%d\n", p.Completed, p.Total)
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Habit != "" {
		h, err := ctx.FindHabit(tr, c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{h}
	} else {
		for _, g := range tr.Groups() {
			selected = append(selected, tr.HabitsInGroup(g.ID)...)
		}
	}
	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	start := utils.Today().AddDays(-(c.Days - 1))
	const maxNameLen = 20

	fmt.Printf("Habit log (last %d days): x done, . missed, blank not due\n\n", c.Days)
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		day := start.AddDays(i)
		fmt.Printf(" %02d/%02d", int(day.Month), day.Day)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*c.Days))

	for _, h := range selected {
		name := h.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}
		fmt.Printf("%-*s", maxNameLen, name)
		for i := 0; i < c.Days; i++ {
			day := start.AddDays(i)
			switch {
			case h.CompletedOn(day.String()):
				fmt.Print("  x   ")
			case tr.IsHabitDueOnDate(h, day.String()):
				fmt.Print("  .   ")
			default:
				fmt.Print("      ")
			}
		}
		fmt.Println()
	}
	return nil
}
