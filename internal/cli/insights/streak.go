package insights

import (
	"fmt"

	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

type StreakCmd struct {
	Date string `short:"d" help:"Count the streak ending on this day." default:"today"`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	n := stats.StreakLength(snap, day)
	fmt.Printf("🔥 %d day streak as of %s\n", n, day)
	if n == 0 && day == ctx.Clock.Today() {
		if prev := stats.StreakLength(snap, day.AddDays(-1)); prev > 0 {
			fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Record today to continue your %d day streak.", prev)))
		}
	}
	return nil
}
