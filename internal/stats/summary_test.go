package stats

import (
	"testing"

	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

func TestSummarize(t *testing.T) {
	p := models.Profile{Goals: []models.GoalID{models.GoalReading, models.GoalDiet}}

	t.Run("today not yet recorded keeps yesterday's streak", func(t *testing.T) {
		snap := snapshotOf("2024-01-08", "2024-01-09")
		sum := Summarize(p, snap, day("2024-01-10"))

		if sum.TodayRecorded {
			t.Error("TodayRecorded = true")
		}
		if sum.Streak != 2 {
			t.Errorf("Streak = %d, want 2", sum.Streak)
		}
		if sum.RecordedDays != 2 {
			t.Errorf("RecordedDays = %d, want 2", sum.RecordedDays)
		}
		if len(sum.Trend) != 7 || sum.Trend[6].Day != day("2024-01-10") {
			t.Errorf("Trend = %+v", sum.Trend)
		}
	})

	t.Run("today recorded", func(t *testing.T) {
		snap := snapshotOf("2024-01-09", "2024-01-10")
		sum := Summarize(p, snap, day("2024-01-10"))

		if !sum.TodayRecorded || sum.Streak != 2 || sum.TodayScore != 50 {
			t.Errorf("Summary = %+v", sum)
		}
		if !sum.HasGoals || sum.Best != models.GoalReading || sum.Worst != models.GoalDiet {
			t.Errorf("best/worst = %q/%q", sum.Best, sum.Worst)
		}
		if len(sum.Goals) != 2 {
			t.Errorf("Goals = %+v", sum.Goals)
		}
	})

	t.Run("no goals", func(t *testing.T) {
		sum := Summarize(models.Profile{}, snapshotOf("2024-01-10"), day("2024-01-10"))
		if sum.HasGoals || sum.TodayScore != 0 {
			t.Errorf("Summary = %+v", sum)
		}
	})
}
