package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % stateCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + stateCount) % stateCount
		case key.Matches(msg, m.keys.Left):
			m.cursor = m.step(-1)
		case key.Matches(msg, m.keys.Right):
			m.cursor = m.step(1)
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.cursor.AddDays(-7)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.cursor.AddDays(7)
		case key.Matches(msg, m.keys.Today):
			m.cursor = m.today
		case key.Matches(msg, m.keys.Reload):
			m.err = m.reload()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// step moves the cursor by one unit of the current view: a day in the week
// and goals views, a month in the month view. Month steps clamp the day to
// the target month's length.
func (m Model) step(dir int) calendar.Day {
	if m.state != StateMonth {
		return m.cursor.AddDays(dir)
	}
	first := calendar.NewDay(m.cursor.Year, m.cursor.Month+time.Month(dir), 1)
	return calendar.NewDay(first.Year, first.Month, min(m.cursor.Day, first.DaysInMonth()))
}
