package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/donghyun81/daily-glow-up-compass/internal/backup"
	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/sqlite"
)

// ResetCmd deletes the profile and every day record.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Delete your profile and all day records?").
			Description("This cannot be undone from within glowup.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if _, ok := ctx.Backend.(*sqlite.Store); ok {
		mgr := backup.NewManager(ctx.Backend.GetConfigPath())
		path, err := mgr.CreateBackup()
		if err != nil {
			return fmt.Errorf("failed to back up before reset: %w", err)
		}
		fmt.Printf("Backup saved to: %s\n", path)
	}

	if err := ctx.Store.ClearAll(); err != nil {
		return err
	}
	fmt.Println(cli.SuccessStyle.Render("✓ All glowup data cleared"))
	return nil
}
