package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Automatic backup on TUI startup, after a successful load
	ctx.PerformAutomaticBackup()

	model, err := tui.NewModel(ctx.Store, ctx.Clock, ctx.Labels, ctx.Feedback)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
