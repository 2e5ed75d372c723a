package backups

import (
	"path/filepath"
	"testing"

	"github.com/donghyun81/daily-glow-up-compass/internal/backup"
	"github.com/donghyun81/daily-glow-up-compass/internal/cli"
	"github.com/donghyun81/daily-glow-up-compass/internal/config"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/sqlite"
)

func setupBackupContext(t *testing.T, backend storage.Backend) *cli.Context {
	t.Helper()
	if err := backend.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	cfg := config.Default()
	cfg.Timezone = "UTC"
	ctx, err := cli.NewContext(cfg, backend)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return ctx
}

func TestBackupCreateAndList(t *testing.T) {
	ctx := setupBackupContext(t, sqlite.NewStore(filepath.Join(t.TempDir(), "glowup.db")))

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("list with no backups error = %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("BackupCreateCmd error = %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Errorf("BackupListCmd error = %v", err)
	}

	backups, err := backup.NewManager(ctx.Backend.GetConfigPath()).ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("found %d backups, want 1", len(backups))
	}
}

func TestBackupRestoreByName(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "glowup.db")
	ctx := setupBackupContext(t, sqlite.NewStore(dbPath))
	if err := ctx.Store.SaveProfile(models.Profile{Name: "before", Goals: []models.GoalID{"reading"}}); err != nil {
		t.Fatal(err)
	}

	mgr := backup.NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if err := ctx.Store.SaveProfile(models.Profile{Name: "after", Goals: []models.GoalID{"reading"}}); err != nil {
		t.Fatal(err)
	}

	cmd := &BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("BackupRestoreCmd error = %v", err)
	}

	if err := ctx.Backend.Load(); err != nil {
		t.Fatal(err)
	}
	p, err := ctx.Store.LoadProfile()
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.Name != "before" {
		t.Errorf("restored profile = %+v, want name 'before'", p)
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx := setupBackupContext(t, sqlite.NewStore(filepath.Join(t.TempDir(), "glowup.db")))
	cmd := &BackupRestoreCmd{BackupFile: "glowup-nope.db", Yes: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}

func TestBackupsRequireSQLite(t *testing.T) {
	ctx := setupBackupContext(t, storage.NewMemoryBackend(0))
	if err := (&BackupCreateCmd{}).Run(ctx); err != errNotSQLite {
		t.Errorf("BackupCreateCmd error = %v, want %v", err, errNotSQLite)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != errNotSQLite {
		t.Errorf("BackupListCmd error = %v, want %v", err, errNotSQLite)
	}
}
