package insights

import (
	"fmt"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

type StatsCmd struct {
	Week  StatsWeekCmd  `cmd:"" help:"Show the calendar week around a day." default:"1"`
	Month StatsMonthCmd `cmd:"" help:"Show recorded goals per week of a month."`
	Trend StatsTrendCmd `cmd:"" help:"Show daily scores over recent days."`
	Goals StatsGoalsCmd `cmd:"" help:"Show completion per goal."`
}

// load returns the profile and snapshot shared by every stats view.
func load(ctx *cli.Context) (models.Profile, stats.Snapshot, error) {
	p, err := ctx.RequireProfile()
	if err != nil {
		return p, stats.Snapshot{}, err
	}
	snap, err := ctx.Snapshot()
	return p, snap, err
}

type StatsWeekCmd struct {
	Date string `short:"d" help:"Any day in the week to show." default:"today"`
}

func (c *StatsWeekCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	p, snap, err := load(ctx)
	if err != nil {
		return err
	}

	week := stats.WeekWindow(snap, day)
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Week of %s", week[0].Day)))
	for _, wd := range week {
		marker := " "
		if wd.Day == day {
			marker = "›"
		}
		line := fmt.Sprintf("%s %-9s %s  %d/%d goals", marker, cli.WeekdayName(wd.Day), wd.Day, wd.RecordedGoals, len(p.Goals))
		if n := len(wd.Photos); n > 0 {
			line += fmt.Sprintf("  📷 %d", n)
		}
		if stats.HasContent(wd.Record) {
			fmt.Println(line)
		} else {
			fmt.Println(cli.MutedStyle.Render(line))
		}
	}
	return nil
}

type StatsMonthCmd struct {
	Date string `short:"d" help:"Any day in the month to show." default:"today"`
}

func (c *StatsMonthCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	p, snap, err := load(ctx)
	if err != nil {
		return err
	}

	buckets := stats.MonthWindow(snap, day)
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%d-%02d", day.Year, int(day.Month))))
	for _, b := range buckets {
		possible := len(p.Goals) * (b.End.Day - b.Start.Day + 1)
		score := 0
		if possible > 0 {
			score = b.RecordedGoals * 100 / possible
		}
		fmt.Printf("  %-6s %s %d recorded\n", b.Label(), cli.ScoreBar(score), b.RecordedGoals)
	}
	return nil
}

type StatsTrendCmd struct {
	Date string `short:"d" help:"Last day of the trend." default:"today"`
	Days int    `help:"Number of days to show." default:"7"`
}

func (c *StatsTrendCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	if c.Days <= 0 {
		return fmt.Errorf("--days must be positive, got %d", c.Days)
	}
	p, snap, err := load(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Last %d day(s)", c.Days)))
	for _, pt := range stats.TrendPoints(p, snap, day, c.Days) {
		fmt.Printf("  %s %s %s\n", pt.Day, cli.ScoreBar(pt.Score), cli.Percent(pt.Score))
	}
	return nil
}

type StatsGoalsCmd struct {
	Date string `short:"d" help:"Last day of the window." default:"today"`
	Days int    `help:"Window length in days." default:"30"`
}

func (c *StatsGoalsCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	if c.Days <= 0 {
		return fmt.Errorf("--days must be positive, got %d", c.Days)
	}
	p, snap, err := load(ctx)
	if err != nil {
		return err
	}

	window := stats.WindowDays(day, c.Days)
	goals := stats.GoalStats(p, snap, window)
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Goals, %s to %s", window[0], day)))
	for _, gs := range goals {
		fmt.Printf("  %-18s %s %s  %s\n", ctx.Labels.Display(gs.Goal), cli.ScoreBar(gs.Percent), cli.Percent(gs.Percent), cli.BadgeLabel(gs.Percent))
	}

	if best, worst, ok := stats.BestAndWorstGoal(p, snap, window); ok && len(goals) > 1 {
		fmt.Printf("\n  Best:  %s\n", ctx.Labels.Display(best))
		fmt.Printf("  Worst: %s\n", ctx.Labels.Display(worst))
	}

	fmt.Println()
	fmt.Println(cli.BoxStyle.Render(ctx.Feedback.Insight(goals, snap.RecordedDays())))
	return nil
}
