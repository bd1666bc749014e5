package settings

import (
	"fmt"
	"strings"

	"github.com/ksolberg/habitkit/internal/cli"
	"github.com/ksolberg/habitkit/internal/models"
	"github.com/ksolberg/habitkit/internal/tracker"
)

type SettingsCmd struct {
	List       ListCmd       `cmd:"" help:"Show current settings."`
	DarkMode   DarkModeCmd   `cmd:"" help:"Toggle dark mode."`
	Background BackgroundCmd `cmd:"" help:"Set the background style."`
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}
	s := tr.Settings()
	fmt.Printf("Dark mode:        %v\n", s.DarkMode)
	fmt.Printf("Background type:  %s\n", s.BackgroundType)
	fmt.Printf("Background color: %s\n", s.BackgroundColor)
	if len(s.GradientColors) > 0 {
		fmt.Printf("Gradient colors:  %s\n", strings.Join(s.GradientColors, ", "))
	}
	return nil
}

type DarkModeCmd struct{}

func (c *DarkModeCmd) Run(ctx *cli.Context) error {
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		tr.ToggleDarkMode()
		s := tr.Settings()
		mode := "light"
		if s.DarkMode {
			mode = "dark"
		}
		fmt.Printf("Switched to %s mode (background %s)\n", mode, s.BackgroundColor)
		return nil
	})
}

type BackgroundCmd struct {
	Type     string   `arg:"" enum:"solid,gradient" help:"Background type: solid or gradient."`
	Color    string   `help:"Solid background color."`
	Gradient []string `help:"Gradient color stops."`
}

func (c *BackgroundCmd) Run(ctx *cli.Context) error {
	bt := models.BackgroundType(c.Type)
	if bt == models.BackgroundGradient && len(c.Gradient) < 2 {
		return fmt.Errorf("a gradient background needs at least two color stops")
	}
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		color := c.Color
		if color == "" {
			color = tr.Settings().BackgroundColor
		}
		tr.SetBackground(bt, color, c.Gradient)
		fmt.Println("Background updated.")
		return nil
	})
}
