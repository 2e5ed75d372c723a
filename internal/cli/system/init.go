package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/config"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/sqlite"
)

type InitCmd struct {
	Force       bool   `help:"Delete an existing SQLite or JSON store before initialization."`
	WriteConfig string `help:"Also save the resolved settings to this config file." placeholder:"PATH"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Backend.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized glowup storage at: %s\n", ctx.Backend.GetConfigPath())

	if c.WriteConfig != "" {
		if err := config.WriteFile(c.WriteConfig, ctx.Config); err != nil {
			return err
		}
		fmt.Printf("Saved settings to: %s\n", c.WriteConfig)
	}
	return nil
}

// removeExisting deletes file-backed stores. Remote backends are cleared
// with 'reset' instead.
func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	switch ctx.Backend.(type) {
	case *sqlite.Store, *storage.JSONFileBackend:
	default:
		return fmt.Errorf("--force only applies to file storage, use 'reset' for %s", ctx.Backend.GetConfigPath())
	}

	path := ctx.Backend.GetConfigPath()
	if _, err := os.Stat(path); err == nil {
		// Close first to release the file handle
		if err := ctx.Backend.Close(); err != nil {
			return fmt.Errorf("failed to close existing store: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing store: %w", err)
		}
		fmt.Printf("Deleted existing store at: %s\n", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to access existing store: %w", err)
	}
	return nil
}
