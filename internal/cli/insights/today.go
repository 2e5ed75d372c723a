package insights

import (
	"fmt"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/cli/records"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	today := ctx.Clock.Today()
	rec, err := ctx.Store.LoadDayRecord(today)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Today, %s (%s)", today, cli.WeekdayName(today))))
	if rec != nil {
		records.PrintRecord(ctx, p, rec)
	} else {
		for _, g := range p.Goals {
			fmt.Printf("  %s %s\n", cli.Check(false), ctx.Labels.Display(g))
		}
	}

	fmt.Println()
	fmt.Println(cli.BoxStyle.Render(ctx.Feedback.Daily(p, rec, stats.DailyScore(p, rec))))
	return nil
}
