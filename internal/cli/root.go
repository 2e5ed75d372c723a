package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/backup"
	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/config"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/feedback"
	"github.com/donghyun81/daily-glow-up-compass/internal/logger"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/sqlite"
)

// Context is handed to every command. It replaces any process-wide state:
// commands read the profile and records through Store on each run.
type Context struct {
	Config   config.Config
	Backend  storage.Backend
	Store    *storage.RecordStore
	Clock    *calendar.Clock
	Labels   *models.Labeler
	Feedback feedback.Generator
}

// NewContext wires the collaborators for cfg around an unopened backend.
func NewContext(cfg config.Config, backend storage.Backend) (*Context, error) {
	clock, err := calendar.NewClock(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	labels := models.NewLabeler(cfg.GoalLabels)
	return &Context{
		Config:   cfg,
		Backend:  backend,
		Store:    storage.NewRecordStore(backend, storage.WithMaxBytes(cfg.MaxBytes)),
		Clock:    clock,
		Labels:   labels,
		Feedback: feedback.NewTemplateGenerator(feedback.WithLabeler(labels)),
	}, nil
}

// PerformAutomaticBackup backs up SQLite databases and logs failures
// without interrupting the command.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Backend.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Backend.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// RequireProfile loads the profile or explains how to create one.
func (c *Context) RequireProfile() (models.Profile, error) {
	p, err := c.Store.LoadProfile()
	if err != nil {
		return models.Profile{}, err
	}
	if p == nil {
		return models.Profile{}, fmt.Errorf("no profile yet, run '%s profile setup' first", constants.AppName)
	}
	return *p, nil
}

// Snapshot loads every day record for the aggregation engine.
func (c *Context) Snapshot() (stats.Snapshot, error) {
	records, err := c.Store.LoadAllDayRecords()
	if err != nil {
		return stats.Snapshot{}, err
	}
	return stats.NewSnapshot(records), nil
}

// ResolveDay parses a --date value. Empty means today; "yesterday" and
// "today" are accepted as shortcuts.
func (c *Context) ResolveDay(value string) (calendar.Day, error) {
	today := c.Clock.Today()
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	d, err := calendar.ParseDay(value)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return d, nil
}

// WeekdayName is the English weekday of d, e.g. "Monday".
func WeekdayName(d calendar.Day) string {
	return time.Weekday(d.Weekday()).String()
}
