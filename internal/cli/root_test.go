package cli

import (
	"testing"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/config"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.Default()
	cfg.Timezone = "UTC"
	cfg.GoalLabels = map[models.GoalID]string{"guitar": "Guitar"}

	ctx, err := NewContext(cfg, storage.NewMemoryBackend(0))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	ctx.Clock = calendar.NewFixedClock(time.UTC, func() time.Time { return now })
	return ctx
}

func TestNewContextRejectsBadTimezone(t *testing.T) {
	cfg := config.Default()
	cfg.Timezone = "Nowhere/Land"
	if _, err := NewContext(cfg, storage.NewMemoryBackend(0)); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestNewContextUsesGoalLabels(t *testing.T) {
	ctx := newTestContext(t)
	if got := ctx.Labels.Label("guitar"); got != "Guitar" {
		t.Errorf("Label(guitar) = %q", got)
	}
}

func TestResolveDay(t *testing.T) {
	ctx := newTestContext(t)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "2024-03-10", false},
		{"today", "2024-03-10", false},
		{" Yesterday ", "2024-03-09", false},
		{"2024-02-29", "2024-02-29", false},
		{"2023-02-29", "", true},
		{"03/10/2024", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ctx.ResolveDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ResolveDay(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRequireProfile(t *testing.T) {
	ctx := newTestContext(t)

	if _, err := ctx.RequireProfile(); err == nil {
		t.Error("expected error without a profile")
	}

	if err := ctx.Store.SaveProfile(models.Profile{Name: "Ara", Goals: []models.GoalID{models.GoalReading}}); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	p, err := ctx.RequireProfile()
	if err != nil {
		t.Fatalf("RequireProfile() error = %v", err)
	}
	if p.Name != "Ara" || len(p.Goals) != 1 {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestSnapshot(t *testing.T) {
	ctx := newTestContext(t)
	day := calendar.MustParseDay("2024-03-09")
	rec := models.NewDayRecord(day.String())
	rec.SetNote(models.GoalReading, "ch. 3")
	if err := ctx.Store.SaveDayRecord(day, rec); err != nil {
		t.Fatalf("SaveDayRecord() error = %v", err)
	}

	snap, err := ctx.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.Len() != 1 || snap.Get(day) == nil {
		t.Errorf("snapshot should contain %s", day)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(calendar.MustParseDay("2024-03-10")); got != "Sunday" {
		t.Errorf("WeekdayName() = %q, want Sunday", got)
	}
}

func TestScoreBarClamps(t *testing.T) {
	if ScoreBar(-5) != ScoreBar(0) || ScoreBar(150) != ScoreBar(100) {
		t.Error("ScoreBar should clamp to 0..100")
	}
}
