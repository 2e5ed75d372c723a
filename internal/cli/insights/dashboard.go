package insights

import (
	"fmt"
	"strings"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}
	today := ctx.Clock.Today()
	sum := stats.Summarize(p, snap, today)

	greeting := "Hello!"
	if p.Name != "" {
		greeting = fmt.Sprintf("Hello, %s!", p.Name)
	}
	fmt.Println(cli.TitleStyle.Render(greeting))
	fmt.Printf("%s\n\n", cli.MutedStyle.Render(fmt.Sprintf("%s, %s", cli.WeekdayName(today), today)))

	yesterday := today.AddDays(-1)
	if rec := snap.Get(yesterday); stats.HasContent(rec) {
		score := stats.DailyScore(p, rec)
		fmt.Printf("Yesterday  %s %d%%\n", cli.ScoreBar(score), score)
		fmt.Printf("  %s\n", ctx.Feedback.ForScore(score, "Yesterday"))
	} else {
		fmt.Println(cli.MutedStyle.Render("Nothing recorded yesterday."))
	}
	fmt.Printf("Today      %s %d%%\n", cli.ScoreBar(sum.TodayScore), sum.TodayScore)
	fmt.Printf("Streak     🔥 %d day(s)\n\n", sum.Streak)

	fmt.Println(strip(stats.RecentWindow(snap, today, constants.TrendWindowDays)))
	fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("%d-day average %d%%", len(sum.Trend), average(sum.Trend))))
	return nil
}

// strip renders the window as one mark per day, checked when the day has
// content.
func strip(entries []stats.DayEntry) string {
	var days, marks []string
	for _, e := range entries {
		days = append(days, fmt.Sprintf("%-3s", cli.WeekdayName(e.Day)[:2]))
		marks = append(marks, cli.Check(stats.HasContent(e.Record))+"  ")
	}
	return strings.Join(days, "") + "\n" + strings.Join(marks, "")
}

func average(points []stats.TrendPoint) int {
	if len(points) == 0 {
		return 0
	}
	total := 0
	for _, pt := range points {
		total += pt.Score
	}
	return total / len(points)
}
