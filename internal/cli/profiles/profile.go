package profiles

import (
	"fmt"
	"strings"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

type ProfileCmd struct {
	Setup ProfileSetupCmd `cmd:"" help:"Create or edit your profile interactively."`
	Show  ProfileShowCmd  `cmd:"" help:"Show your profile." default:"1"`
	Set   ProfileSetCmd   `cmd:"" help:"Update profile fields."`
	Goal  struct {
		Add    GoalAddCmd    `cmd:"" help:"Add a goal (preset id or any custom id)."`
		Remove GoalRemoveCmd `cmd:"" help:"Remove a goal."`
		List   GoalListCmd   `cmd:"" help:"List preset goals."`
	} `cmd:"" help:"Manage goals."`
}

type ProfileSetupCmd struct{}

func (c *ProfileSetupCmd) Run(ctx *cli.Context) error {
	existing, err := ctx.Store.LoadProfile()
	if err != nil {
		return err
	}

	fm := NewSetupForm(existing)
	if err := fm.Form().Run(); err != nil {
		return err
	}

	p := models.Profile{}
	if existing != nil {
		p = *existing
	}
	if err := fm.Apply(&p); err != nil {
		return err
	}
	if err := ctx.Store.SaveProfile(p); err != nil {
		return err
	}

	fmt.Println(cli.SuccessStyle.Render("✓ Profile saved"))
	printProfile(ctx, p)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	printProfile(ctx, p)
	return nil
}

func printProfile(ctx *cli.Context, p models.Profile) {
	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Println(cli.TitleStyle.Render(name))
	if p.Age != models.AgeUnset {
		fmt.Printf("  Age:    %s\n", p.Age)
	}
	if p.Gender != "" {
		fmt.Printf("  Gender: %s\n", p.Gender)
	}
	if !p.CreatedAt.IsZero() {
		fmt.Printf("  Since:  %s\n", ctx.Clock.DayOf(p.CreatedAt))
	}
	fmt.Println("  Goals:")
	if len(p.Goals) == 0 {
		fmt.Println(cli.MutedStyle.Render("    none yet, add one with 'glowup profile goal add <id>'"))
	}
	for _, g := range p.Goals {
		fmt.Printf("    %s %s\n", ctx.Labels.Display(g), cli.MutedStyle.Render("("+string(g)+")"))
	}
}

type ProfileSetCmd struct {
	Name   *string `help:"Display name."`
	Age    *string `help:"Age bracket: 10s, 20s, 30s, 40s or 50s+. Empty clears it."`
	Gender *string `help:"Gender, free text. Empty clears it."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	p, err := loadOrNew(ctx)
	if err != nil {
		return err
	}
	if c.Name == nil && c.Age == nil && c.Gender == nil {
		return fmt.Errorf("nothing to update, pass --name, --age or --gender")
	}
	if c.Name != nil {
		p.Name = strings.TrimSpace(*c.Name)
	}
	if c.Age != nil {
		p.Age = models.AgeBracket(strings.TrimSpace(*c.Age))
	}
	if c.Gender != nil {
		p.Gender = strings.TrimSpace(*c.Gender)
	}
	if err := ctx.Store.SaveProfile(p); err != nil {
		return err
	}
	fmt.Println(cli.SuccessStyle.Render("✓ Profile updated"))
	return nil
}

type GoalAddCmd struct {
	Goals []string `arg:"" help:"Goal ids to add, in order."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	p, err := loadOrNew(ctx)
	if err != nil {
		return err
	}
	added := 0
	for _, g := range c.Goals {
		id := models.GoalID(strings.TrimSpace(g))
		if !p.AddGoal(id) {
			fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("skipped %q: blank or already a goal", g)))
			continue
		}
		added++
		fmt.Printf("✓ Added %s\n", ctx.Labels.Display(id))
	}
	if added == 0 {
		return nil
	}
	return ctx.Store.SaveProfile(p)
}

type GoalRemoveCmd struct {
	Goal string `arg:"" help:"Goal id to remove."`
}

func (c *GoalRemoveCmd) Run(ctx *cli.Context) error {
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	id := models.GoalID(c.Goal)
	if !p.RemoveGoal(id) {
		return fmt.Errorf("%q is not one of your goals", c.Goal)
	}
	if err := ctx.Store.SaveProfile(p); err != nil {
		return err
	}
	// Existing notes for the goal stay in the day records
	fmt.Printf("✓ Removed %s\n", ctx.Labels.Display(id))
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	for _, g := range models.PresetGoals {
		fmt.Printf("  %-12s %s\n", g.ID, ctx.Labels.Display(g.ID))
	}
	return nil
}

func loadOrNew(ctx *cli.Context) (models.Profile, error) {
	p, err := ctx.Store.LoadProfile()
	if err != nil {
		return models.Profile{}, err
	}
	if p == nil {
		return models.Profile{Goals: []models.GoalID{}}, nil
	}
	return *p, nil
}
