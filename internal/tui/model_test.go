package tui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/feedback"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	now := time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC) // Wednesday
	clock := calendar.NewFixedClock(time.UTC, func() time.Time { return now })
	store := storage.NewRecordStore(storage.NewMemoryBackend(0), storage.WithNow(func() time.Time { return now }))

	p := models.Profile{Name: "Min", Goals: []models.GoalID{models.GoalExercise, models.GoalReading}}
	if err := store.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	rec := models.NewDayRecord("2024-01-16")
	rec.SetNote(models.GoalExercise, "5km run")
	rec.AddPhotos(models.GoalExercise, "data:image/png;base64,AA==")
	if err := store.SaveDayRecord(calendar.MustParseDay("2024-01-16"), rec); err != nil {
		t.Fatalf("SaveDayRecord() error = %v", err)
	}

	labels := models.NewLabeler(nil)
	gen := feedback.NewTemplateGenerator(feedback.WithRand(rand.New(rand.NewPCG(1, 1))), feedback.WithLabeler(labels))
	m, err := NewModel(store, clock, labels, gen)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnToday(t *testing.T) {
	m := newTestModel(t)
	if got := m.Cursor().String(); got != "2024-01-17" {
		t.Errorf("Cursor() = %s, want 2024-01-17", got)
	}
	if m.State() != StateWeek {
		t.Errorf("State() = %v, want week", m.State())
	}
}

func TestWeekNavigation(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyLeft)
	if got := m.Cursor().String(); got != "2024-01-16" {
		t.Errorf("after left: %s", got)
	}
	m = press(t, m, keyRight, keyRight)
	if got := m.Cursor().String(); got != "2024-01-18" {
		t.Errorf("after right x2: %s", got)
	}
	m = press(t, m, keyUp)
	if got := m.Cursor().String(); got != "2024-01-11" {
		t.Errorf("after up: %s", got)
	}
	m = press(t, m, runes("t"))
	if got := m.Cursor().String(); got != "2024-01-17" {
		t.Errorf("after today: %s", got)
	}
}

func TestMonthNavigationClampsDay(t *testing.T) {
	m := newTestModel(t)
	m.cursor = calendar.MustParseDay("2024-01-31")

	m = press(t, m, keyTab)
	if m.State() != StateMonth {
		t.Fatalf("tab should switch to month view, got %v", m.State())
	}
	m = press(t, m, keyRight)
	if got := m.Cursor().String(); got != "2024-02-29" {
		t.Errorf("next month from Jan 31 = %s, want 2024-02-29", got)
	}
	m = press(t, m, keyLeft, keyLeft)
	if got := m.Cursor().String(); got != "2023-12-29" {
		t.Errorf("two months back = %s, want 2023-12-29", got)
	}
}

func TestTabCycles(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyTab, keyTab, keyTab)
	if m.State() != StateWeek {
		t.Errorf("three tabs should wrap to week, got %v", m.State())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State() != StateGoals {
		t.Errorf("shift+tab from week should go to goals, got %v", m.State())
	}
}

func TestViews(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyLeft)

	week := m.View()
	for _, want := range []string{"Week of 2024-01-14", "5km run", "1/2"} {
		if !strings.Contains(week, want) {
			t.Errorf("week view missing %q", want)
		}
	}

	month := press(t, m, keyTab).View()
	for _, want := range []string{"January 2024", "1–7", "29–31"} {
		if !strings.Contains(month, want) {
			t.Errorf("month view missing %q", want)
		}
	}

	goals := press(t, m, keyTab, keyTab).View()
	for _, want := range []string{"Exercise", "Reading", "1 day streak"} {
		if !strings.Contains(goals, want) {
			t.Errorf("goals view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
