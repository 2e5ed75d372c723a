package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/feedback"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

const barWidth = 20

// ScoreBar renders a 0..100 score as a fixed-width bar.
func ScoreBar(score int) string {
	score = max(0, min(100, score))
	filled := score * barWidth / 100
	return SuccessStyle.Render(strings.Repeat("█", filled)) +
		MutedStyle.Render(strings.Repeat("░", barWidth-filled))
}

// BadgeLabel renders a goal completion band with its color.
func BadgeLabel(percent int) string {
	band := feedback.Badge(percent)
	text := feedback.BadgeText(band)
	switch band {
	case constants.BandExcellent:
		return SuccessStyle.Render(text)
	case constants.BandGood:
		return WarningStyle.Render(text)
	default:
		return DangerStyle.Render(text)
	}
}

// Check renders a recorded/unrecorded mark.
func Check(done bool) string {
	if done {
		return SuccessStyle.Render("✓")
	}
	return MutedStyle.Render("·")
}

func Percent(n int) string {
	return fmt.Sprintf("%3d%%", n)
}
