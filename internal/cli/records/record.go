package records

import (
	"fmt"
	"strings"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

type RecordCmd struct {
	Note    RecordNoteCmd        `cmd:"" help:"Write today's note for a goal."`
	Photo   RecordPhotoCmd       `cmd:"" help:"Attach photos to a goal."`
	Unphoto RecordPhotoRemoveCmd `cmd:"" help:"Remove a photo from a goal."`
	Reflect RecordReflectCmd     `cmd:"" help:"Write the overall reflection for a day."`
	Show    RecordShowCmd        `cmd:"" help:"Show a day's record." default:"1"`
}

// DateFlag selects the day a record command works on.
type DateFlag struct {
	Date string `short:"d" help:"Day to use (YYYY-MM-DD, today or yesterday)." default:"today"`
}

// edit loads the record for day, applies fn and saves it back.
func edit(ctx *cli.Context, day calendar.Day, fn func(*models.DayRecord) error) (models.DayRecord, error) {
	existing, err := ctx.Store.LoadDayRecord(day)
	if err != nil {
		return models.DayRecord{}, err
	}
	rec := models.NewDayRecord(day.String())
	if existing != nil {
		rec = *existing
	}
	if err := fn(&rec); err != nil {
		return models.DayRecord{}, err
	}
	if err := ctx.Store.SaveDayRecord(day, rec); err != nil {
		return models.DayRecord{}, err
	}
	return rec, nil
}

func requireGoal(ctx *cli.Context, goal string) (models.GoalID, error) {
	p, err := ctx.RequireProfile()
	if err != nil {
		return "", err
	}
	id := models.GoalID(strings.TrimSpace(goal))
	if !p.HasGoal(id) {
		return "", fmt.Errorf("%q is not one of your goals, add it with 'glowup profile goal add %s'", goal, goal)
	}
	return id, nil
}

type RecordNoteCmd struct {
	DateFlag
	Goal string   `arg:"" help:"Goal id."`
	Text []string `arg:"" optional:"" help:"Note text. Empty clears the note."`
}

func (c *RecordNoteCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	goal, err := requireGoal(ctx, c.Goal)
	if err != nil {
		return err
	}
	text := strings.Join(c.Text, " ")
	if _, err := edit(ctx, day, func(rec *models.DayRecord) error {
		rec.SetNote(goal, text)
		return nil
	}); err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		fmt.Printf("✓ Cleared %s note for %s\n", ctx.Labels.Display(goal), day)
	} else {
		fmt.Printf("✓ Recorded %s for %s\n", ctx.Labels.Display(goal), day)
	}
	return nil
}

type RecordPhotoCmd struct {
	DateFlag
	Goal    string   `arg:"" help:"Goal id."`
	Sources []string `arg:"" help:"Image files or existing photo handles, attached in the given order."`
}

func (c *RecordPhotoCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	goal, err := requireGoal(ctx, c.Goal)
	if err != nil {
		return err
	}

	handles := make([]string, 0, len(c.Sources))
	for _, src := range c.Sources {
		h, err := PhotoHandle(src)
		if err != nil {
			return err
		}
		handles = append(handles, h)
	}

	rec, err := edit(ctx, day, func(rec *models.DayRecord) error {
		rec.AddPhotos(goal, handles...)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ %s now has %d photo(s) on %s\n", ctx.Labels.Display(goal), len(rec.Photos[goal]), day)
	return nil
}

type RecordPhotoRemoveCmd struct {
	DateFlag
	Goal  string `arg:"" help:"Goal id."`
	Index int    `arg:"" help:"Photo number as shown by 'record show' (1-based)."`
}

func (c *RecordPhotoRemoveCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	goal := models.GoalID(c.Goal)
	_, err = edit(ctx, day, func(rec *models.DayRecord) error {
		if !rec.RemovePhoto(goal, c.Index-1) {
			return fmt.Errorf("%s has no photo #%d on %s", goal, c.Index, day)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Removed photo #%d from %s\n", c.Index, ctx.Labels.Display(goal))
	return nil
}

type RecordReflectCmd struct {
	DateFlag
	Text []string `arg:"" optional:"" help:"Reflection text. Empty clears it."`
}

func (c *RecordReflectCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if _, err := edit(ctx, day, func(rec *models.DayRecord) error {
		rec.OverallReflection = text
		return nil
	}); err != nil {
		return err
	}
	fmt.Printf("✓ Saved reflection for %s\n", day)
	return nil
}

type RecordShowCmd struct {
	DateFlag
}

func (c *RecordShowCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	p, err := ctx.RequireProfile()
	if err != nil {
		return err
	}
	rec, err := ctx.Store.LoadDayRecord(day)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s (%s)", day, cli.WeekdayName(day))))
	if rec == nil {
		fmt.Println(cli.MutedStyle.Render("  Nothing recorded."))
		return nil
	}
	PrintRecord(ctx, p, rec)
	return nil
}

// PrintRecord lists profile goals first, then notes for goals that were
// removed from the profile since.
func PrintRecord(ctx *cli.Context, p models.Profile, rec *models.DayRecord) {
	for _, g := range p.Goals {
		printGoal(ctx, g, rec)
	}
	for _, g := range rec.RecordedGoals() {
		if !p.HasGoal(g) {
			printGoal(ctx, g, rec)
		}
	}
	if rec.OverallReflection != "" {
		fmt.Println()
		fmt.Println("  Reflection:")
		fmt.Printf("    %s\n", rec.OverallReflection)
	}
	fmt.Printf("\n  Score: %s %d%%\n", cli.ScoreBar(stats.DailyScore(p, rec)), stats.DailyScore(p, rec))
}

func printGoal(ctx *cli.Context, g models.GoalID, rec *models.DayRecord) {
	fmt.Printf("  %s %s\n", cli.Check(rec.IsRecorded(g)), ctx.Labels.Display(g))
	if note := rec.Notes[g]; note != "" {
		fmt.Printf("      %s\n", note)
	}
	for i, h := range rec.Photos[g] {
		fmt.Printf("      %s\n", cli.MutedStyle.Render(fmt.Sprintf("📷 #%d %s", i+1, ShortHandle(h))))
	}
}
