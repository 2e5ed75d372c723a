package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/feedback"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateWeek:
		content = m.viewWeek()
	case StateMonth:
		content = m.viewMonth()
	case StateGoals:
		content = m.viewGoals()
	}

	parts := []string{m.viewTabs(), docStyle.Render(content)}
	if m.err != nil {
		parts = append(parts, dangerStyle.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func weekdayAbbrev(d calendar.Day) string {
	return time.Weekday(d.Weekday()).String()[:2]
}

// dayStyle picks the cell style: selection over today over recorded.
func (m Model) dayStyle(d calendar.Day) lipgloss.Style {
	switch {
	case d == m.cursor:
		return selectedStyle
	case d == m.today:
		return todayStyle
	case stats.HasContent(m.snapshot.Get(d)):
		return recordedStyle
	default:
		return mutedStyle
	}
}

func (m Model) viewWeek() string {
	week := stats.WeekWindow(m.snapshot, m.cursor)

	cells := make([]string, len(week))
	for i, wd := range week {
		progress := fmt.Sprintf("%d/%d", wd.RecordedGoals, len(m.profile.Goals))
		photo := " "
		if wd.Photo != "" {
			photo = "📷"
		}
		cell := lipgloss.JoinVertical(lipgloss.Center,
			weekdayAbbrev(wd.Day),
			fmt.Sprintf("%2d", wd.Day.Day),
			progress,
			photo,
		)
		cells[i] = m.dayStyle(wd.Day).Width(7).Align(lipgloss.Center).Render(cell)
	}

	title := fmt.Sprintf("Week of %s", week[0].Day)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		"",
		m.viewDayDetail(m.cursor),
	)
}

func (m Model) viewDayDetail(d calendar.Day) string {
	rec := m.snapshot.Get(d)
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n", time.Weekday(d.Weekday()), d)

	if !stats.HasContent(rec) {
		b.WriteString(mutedStyle.Render("Nothing recorded."))
		return panelStyle.Render(b.String())
	}

	for _, g := range m.profile.Goals {
		mark := mutedStyle.Render("·")
		if rec.IsRecorded(g) {
			mark = recordedStyle.Render("✓")
		}
		fmt.Fprintf(&b, "%s %s", mark, m.labels.Display(g))
		if note := rec.Notes[g]; note != "" {
			fmt.Fprintf(&b, ": %s", note)
		}
		if n := len(rec.Photos[g]); n > 0 {
			fmt.Fprintf(&b, " (📷 %d)", n)
		}
		b.WriteString("\n")
	}
	if rec.OverallReflection != "" {
		fmt.Fprintf(&b, "\n%s\n", rec.OverallReflection)
	}
	b.WriteString("\n")
	b.WriteString(m.feedback.ForScore(stats.DailyScore(m.profile, rec), ""))
	return panelStyle.Render(b.String())
}

func (m Model) viewMonth() string {
	first := m.cursor.FirstOfMonth()
	last := first.AddDays(first.DaysInMonth() - 1)

	var rows []string
	var header []string
	for i := range 7 {
		header = append(header, fmt.Sprintf("%-3s", weekdayAbbrev(first.StartOfWeek().AddDays(i))))
	}
	rows = append(rows, mutedStyle.Render(strings.Join(header, "")))

	for start := first.StartOfWeek(); !start.After(last); start = start.AddDays(7) {
		var row []string
		for i := range 7 {
			d := start.AddDays(i)
			if d.Before(first) || d.After(last) {
				row = append(row, "   ")
				continue
			}
			row = append(row, m.dayStyle(d).Render(fmt.Sprintf("%2d", d.Day))+" ")
		}
		rows = append(rows, strings.Join(row, ""))
	}

	var buckets []string
	for _, b := range stats.MonthWindow(m.snapshot, m.cursor) {
		buckets = append(buckets, fmt.Sprintf("%-6s %3d recorded", b.Label(), b.RecordedGoals))
	}

	title := fmt.Sprintf("%s %d", m.cursor.Month, m.cursor.Year)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			strings.Join(rows, "\n"),
			"    ",
			strings.Join(buckets, "\n"),
		),
	)
}

func (m Model) viewGoals() string {
	window := stats.WindowDays(m.cursor, constants.InsightWindowDays)
	goals := stats.GoalStats(m.profile, m.snapshot, window)
	if len(goals) == 0 {
		return mutedStyle.Render("No goals yet. Add one with 'glowup profile goal add <id>'.")
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Last %d days to %s", len(window), m.cursor), "")
	for _, gs := range goals {
		badge := feedback.BadgeText(feedback.Badge(gs.Percent))
		lines = append(lines, fmt.Sprintf("%-18s %3d%%  %s", m.labels.Display(gs.Goal), gs.Percent, badge))
	}

	streak := stats.StreakLength(m.snapshot, m.cursor)
	lines = append(lines, "", fmt.Sprintf("🔥 %d day streak, %d day(s) recorded", streak, m.snapshot.RecordedDays()))
	return strings.Join(lines, "\n")
}
