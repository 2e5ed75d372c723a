package stats

import (
	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

// Summary is the dashboard view of a snapshot as of one day.
type Summary struct {
	Today         calendar.Day
	TodayRecorded bool
	TodayScore    int
	Streak        int
	RecordedDays  int
	Trend         []TrendPoint
	Goals         []GoalStat
	Best          models.GoalID
	Worst         models.GoalID
	HasGoals      bool
}

// Summarize builds the dashboard summary. The streak counts from today
// when today already has content, otherwise from yesterday, so an
// unfinished day does not reset it.
func Summarize(p models.Profile, s Snapshot, today calendar.Day) Summary {
	rec := s.Get(today)
	sum := Summary{
		Today:         today,
		TodayRecorded: HasContent(rec),
		TodayScore:    DailyScore(p, rec),
		RecordedDays:  s.RecordedDays(),
		Trend:         TrendPoints(p, s, today, constants.TrendWindowDays),
	}

	if sum.TodayRecorded {
		sum.Streak = StreakLength(s, today)
	} else {
		sum.Streak = StreakLength(s, today.AddDays(-1))
	}

	window := WindowDays(today, constants.InsightWindowDays)
	sum.Goals = GoalStats(p, s, window)
	sum.Best, sum.Worst, sum.HasGoals = BestAndWorstGoal(p, s, window)
	return sum
}
