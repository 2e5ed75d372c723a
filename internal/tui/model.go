package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/feedback"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
)

type SessionState int

const (
	StateWeek SessionState = iota
	StateMonth
	StateGoals
	stateCount
)

var tabTitles = [stateCount]string{"Week", "Month", "Goals"}

type Model struct {
	store    *storage.RecordStore
	clock    *calendar.Clock
	labels   *models.Labeler
	feedback feedback.Generator

	profile  models.Profile
	snapshot stats.Snapshot
	today    calendar.Day
	cursor   calendar.Day

	state    SessionState
	keys     KeyMap
	help     help.Model
	err      error
	quitting bool
	width    int
	height   int
}

// NewModel loads the profile and every day record once; 'r' reloads.
func NewModel(store *storage.RecordStore, clock *calendar.Clock, labels *models.Labeler, gen feedback.Generator) (Model, error) {
	m := Model{
		store:    store,
		clock:    clock,
		labels:   labels,
		feedback: gen,
		state:    StateWeek,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	if err := m.reload(); err != nil {
		return m, err
	}
	m.cursor = m.today
	return m, nil
}

func (m *Model) reload() error {
	p, err := m.store.LoadProfile()
	if err != nil {
		return err
	}
	if p != nil {
		m.profile = *p
	}
	records, err := m.store.LoadAllDayRecords()
	if err != nil {
		return err
	}
	m.snapshot = stats.NewSnapshot(records)
	m.today = m.clock.Today()
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor is the selected day.
func (m Model) Cursor() calendar.Day {
	return m.cursor
}

func (m Model) State() SessionState {
	return m.state
}
