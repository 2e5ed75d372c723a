package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

// HasContent reports whether rec exists and has at least one note with
// non-blank text. Photos and the reflection do not count.
func HasContent(rec *models.DayRecord) bool {
	return RecordedGoalCount(rec) > 0
}

// RecordedGoalCount counts goals with a non-blank note.
func RecordedGoalCount(rec *models.DayRecord) int {
	if rec == nil {
		return 0
	}
	return len(rec.RecordedGoals())
}

// StreakLength counts consecutive days with content ending at asOf. The
// walk stops after constants.MaxStreakDays days.
func StreakLength(s Snapshot, asOf calendar.Day) int {
	streak := 0
	day := asOf
	for streak < constants.MaxStreakDays && HasContent(s.Get(day)) {
		streak++
		day = day.AddDays(-1)
	}
	return streak
}

// DayEntry pairs a day with its record, nil when absent.
type DayEntry struct {
	Day    calendar.Day
	Record *models.DayRecord
}

// WindowDays returns the n days ending at asOf, oldest first.
func WindowDays(asOf calendar.Day, n int) []calendar.Day {
	if n <= 0 {
		return nil
	}
	return calendar.Range(asOf.AddDays(-(n - 1)), asOf)
}

// RecentWindow returns exactly days entries ending at asOf, oldest first.
func RecentWindow(s Snapshot, asOf calendar.Day, days int) []DayEntry {
	window := WindowDays(asOf, days)
	entries := make([]DayEntry, len(window))
	for i, d := range window {
		entries[i] = DayEntry{Day: d, Record: s.Get(d)}
	}
	return entries
}

// WeekDay is one cell of the calendar week view.
type WeekDay struct {
	Day           calendar.Day
	Record        *models.DayRecord
	RecordedGoals int
	// Photo is the first photo handle in goal-id order.
	Photo string
	// Photos holds up to constants.MaxWeekPhotos handles in goal-id order.
	Photos []string
}

// WeekWindow returns Sunday through Saturday of the week containing center.
func WeekWindow(s Snapshot, center calendar.Day) [7]WeekDay {
	var week [7]WeekDay
	start := center.StartOfWeek()
	for i := range week {
		d := start.AddDays(i)
		rec := s.Get(d)
		photos := photoHandles(rec, constants.MaxWeekPhotos)
		week[i] = WeekDay{
			Day:           d,
			Record:        rec,
			RecordedGoals: RecordedGoalCount(rec),
			Photos:        photos,
		}
		if len(photos) > 0 {
			week[i].Photo = photos[0]
		}
	}
	return week
}

func photoHandles(rec *models.DayRecord, limit int) []string {
	if rec == nil {
		return nil
	}
	goals := make([]models.GoalID, 0, len(rec.Photos))
	for g := range rec.Photos {
		goals = append(goals, g)
	}
	slices.Sort(goals)

	var out []string
	for _, g := range goals {
		for _, h := range rec.Photos[g] {
			if len(out) == limit {
				return out
			}
			out = append(out, h)
		}
	}
	return out
}

// WeekBucket is a 7-day slice of a calendar month.
type WeekBucket struct {
	Start         calendar.Day
	End           calendar.Day
	RecordedGoals int
}

// Label renders the bucket as a day-of-month span, e.g. "1–7".
func (b WeekBucket) Label() string {
	return fmt.Sprintf("%d–%d", b.Start.Day, b.End.Day)
}

// MonthWindow splits the month containing center into buckets of 7 days
// starting at day 1. The last bucket holds the remainder.
func MonthWindow(s Snapshot, center calendar.Day) []WeekBucket {
	first := center.FirstOfMonth()
	last := first.AddDays(center.DaysInMonth() - 1)

	var buckets []WeekBucket
	for start := first; !start.After(last); start = start.AddDays(7) {
		end := start.AddDays(6)
		if end.After(last) {
			end = last
		}
		b := WeekBucket{Start: start, End: end}
		for _, d := range calendar.Range(start, end) {
			b.RecordedGoals += RecordedGoalCount(s.Get(d))
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// GoalCompletionRatio is the fraction of window days on which goal has a
// non-blank note. An empty window yields 0.
func GoalCompletionRatio(s Snapshot, goal models.GoalID, window []calendar.Day) float64 {
	if len(window) == 0 {
		return 0
	}
	hits := 0
	for _, d := range window {
		if rec := s.Get(d); rec != nil && rec.IsRecorded(goal) {
			hits++
		}
	}
	return float64(hits) / float64(len(window))
}

// GoalStat is a goal's completion over a window.
type GoalStat struct {
	Goal    models.GoalID
	Ratio   float64
	Percent int
}

// GoalStats computes completion for every profile goal, in profile order.
func GoalStats(p models.Profile, s Snapshot, window []calendar.Day) []GoalStat {
	out := make([]GoalStat, len(p.Goals))
	for i, g := range p.Goals {
		r := GoalCompletionRatio(s, g, window)
		out[i] = GoalStat{Goal: g, Ratio: r, Percent: percent(r)}
	}
	return out
}

// BestAndWorstGoal picks the goals with the highest and lowest completion
// over window. Ties go to the goal listed first in the profile. ok is false
// when the profile has no goals.
func BestAndWorstGoal(p models.Profile, s Snapshot, window []calendar.Day) (best, worst models.GoalID, ok bool) {
	b, w, ok := Extremes(GoalStats(p, s, window))
	return b.Goal, w.Goal, ok
}

// Extremes returns the entries with the highest and lowest ratio. Ties go
// to the earlier entry. ok is false for an empty slice.
func Extremes(goals []GoalStat) (best, worst GoalStat, ok bool) {
	if len(goals) == 0 {
		return GoalStat{}, GoalStat{}, false
	}
	best, worst = goals[0], goals[0]
	for _, gs := range goals[1:] {
		if gs.Ratio > best.Ratio {
			best = gs
		}
		if gs.Ratio < worst.Ratio {
			worst = gs
		}
	}
	return best, worst, true
}

// DailyScore is the rounded percentage of profile goals recorded in rec.
func DailyScore(p models.Profile, rec *models.DayRecord) int {
	if rec == nil || len(p.Goals) == 0 {
		return 0
	}
	hits := 0
	for _, g := range p.Goals {
		if rec.IsRecorded(g) {
			hits++
		}
	}
	return percent(float64(hits) / float64(len(p.Goals)))
}

// TrendPoint is one day of the score line chart.
type TrendPoint struct {
	Day   calendar.Day
	Score int
}

// TrendPoints scores each day of the recent window, oldest first.
func TrendPoints(p models.Profile, s Snapshot, asOf calendar.Day, days int) []TrendPoint {
	entries := RecentWindow(s, asOf, days)
	points := make([]TrendPoint, len(entries))
	for i, e := range entries {
		points[i] = TrendPoint{Day: e.Day, Score: DailyScore(p, e.Record)}
	}
	return points
}

func percent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
