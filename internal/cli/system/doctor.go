package system

import (
	"fmt"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/backup"
	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/sqlite"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	needsDB  bool
	severity string
}

const (
	severityFail = "FAIL"
	severityWarn = "WARNING"
)

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	checks := []check{
		{name: "Schema version", run: checkSchemaVersion, needsDB: true, severity: severityFail},
		{name: "Profile", run: checkProfile, needsDB: true, severity: severityWarn},
		{name: "Day records", run: checkRecords, needsDB: true, severity: severityFail},
		{name: "Record dates", run: checkFutureRecords, needsDB: true, severity: severityWarn},
		{name: "Backups present", run: checkBackupsPresent, severity: severityWarn},
		{name: "Clock/timezone", run: checkClockTimezone, severity: severityFail},
	}

	hasError := false
	dbReachable := true
	if err := ctx.Backend.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Printf("✓ Storage reachable: OK (%s)\n", ctx.Backend.GetConfigPath())
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.severity == severityWarn:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	migrator, ok := ctx.Backend.(storage.Migrator)
	if !ok {
		return nil
	}
	current, latest, err := migrator.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than supported version %d", current, latest)
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind %d, run 'glowup migrate'", current, latest)
	}
	return nil
}

func checkProfile(ctx *cli.Context) error {
	p, err := ctx.Store.LoadProfile()
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("no profile yet, run 'glowup profile setup'")
	}
	if len(p.Goals) == 0 {
		return fmt.Errorf("profile has no goals, statistics will be empty")
	}
	return nil
}

func checkRecords(ctx *cli.Context) error {
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}
	if skipped := snap.Skipped(); len(skipped) > 0 {
		return fmt.Errorf("%d day record(s) have malformed dates and are ignored: %v", len(skipped), skipped)
	}
	return nil
}

// checkFutureRecords flags days after today, usually left behind by a
// timezone change.
func checkFutureRecords(ctx *cli.Context) error {
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}
	today := ctx.Clock.Today()
	var future []string
	for _, d := range snap.Days() {
		if d.After(today) {
			future = append(future, d.String())
		}
	}
	if len(future) > 0 {
		return fmt.Errorf("%d day record(s) are dated after today (%s): %v", len(future), today, future)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Backend.(*sqlite.Store); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Backend.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'glowup backup create'")
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	if !calendar.ValidateTimezone(ctx.Config.Timezone) {
		return fmt.Errorf("invalid timezone %q", ctx.Config.Timezone)
	}
	now := ctx.Clock.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	fmt.Printf("   Today is %s in %s\n", ctx.Clock.Today(), ctx.Clock.Location())
	return nil
}
