package groups

import (
	"fmt"
	"strings"

	"github.com/ksolberg/habitkit/internal/cli"
	"github.com/ksolberg/habitkit/internal/tracker"
	"github.com/ksolberg/habitkit/internal/validation"
)

type GroupCmd struct {
	Add     GroupAddCmd     `cmd:"" help:"Add a new habit group."`
	List    GroupListCmd    `cmd:"" help:"List habit groups."`
	Edit    GroupEditCmd    `cmd:"" help:"Edit a habit group."`
	Delete  GroupDeleteCmd  `cmd:"" help:"Delete a habit group and its habits."`
	Reorder GroupReorderCmd `cmd:"" help:"Reorder habit groups."`
}

type GroupAddCmd struct {
	Name  string `arg:"" help:"Group name."`
	Icon  string `help:"Icon token." default:"star"`
	Color string `help:"Color token." default:"#4D94FF"`
}

func (c *GroupAddCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateName(c.Name); err != nil {
		return err
	}
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		for _, g := range tr.Groups() {
			if strings.EqualFold(g.Name, c.Name) {
				return fmt.Errorf("group with name %q already exists", c.Name)
			}
		}
		g := tr.AddGroup(c.Name, c.Icon, c.Color)
		fmt.Printf("Added group: %s\n", g.Name)
		return nil
	})
}

type GroupListCmd struct{}

func (c *GroupListCmd) Run(ctx *cli.Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}
	groups := tr.Groups()
	if len(groups) == 0 {
		fmt.Println("No groups found.")
		return nil
	}
	for _, g := range groups {
		count := len(tr.HabitsInGroup(g.ID))
		fmt.Printf("%-20s %2d habits  (icon %s, color %s)\n", g.Name, count, g.Icon, g.Color)
	}
	return nil
}

type GroupEditCmd struct {
	Group string  `arg:"" help:"Group name or id."`
	Name  *string `help:"New name."`
	Icon  *string `help:"New icon token."`
	Color *string `help:"New color token."`
}

func (c *GroupEditCmd) Run(ctx *cli.Context) error {
	if c.Name != nil {
		if err := validation.ValidateName(*c.Name); err != nil {
			return err
		}
	}
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		g, err := ctx.FindGroup(tr, c.Group)
		if err != nil {
			return err
		}
		tr.UpdateGroup(g.ID, tracker.GroupUpdate{Name: c.Name, Icon: c.Icon, Color: c.Color})
		updated, _ := tr.Group(g.ID)
		fmt.Printf("Updated group: %s\n", updated.Name)
		return nil
	})
}

type GroupDeleteCmd struct {
	Group string `arg:"" help:"Group name or id."`
}

func (c *GroupDeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		g, err := ctx.FindGroup(tr, c.Group)
		if err != nil {
			return err
		}
		removed := len(tr.HabitsInGroup(g.ID))
		tr.RemoveGroup(g.ID)
		fmt.Printf("Deleted group %q and %d habit(s)\n", g.Name, removed)
		return nil
	})
}

type GroupReorderCmd struct {
	Groups []string `arg:"" help:"Group names or ids in the desired order."`
}

func (c *GroupReorderCmd) Run(ctx *cli.Context) error {
	return ctx.WithTracker(func(tr *tracker.Tracker) error {
		ids := make([]string, 0, len(c.Groups))
		for _, ref := range c.Groups {
			g, err := ctx.FindGroup(tr, ref)
			if err != nil {
				return err
			}
			ids = append(ids, g.ID)
		}
		tr.ReorderGroups(ids)
		fmt.Println("Groups reordered:")
		for i, g := range tr.Groups() {
			fmt.Printf("  %d. %s\n", i+1, g.Name)
		}
		return nil
	})
}
