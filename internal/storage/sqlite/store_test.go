package sqlite

import (
	"path/filepath"
	"strings"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}

	cleanup := func() {
		store.Close()
	}

	return store, cleanup
}

func TestInitCreatesSchema(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	for _, table := range []string{"kv_store", "KV_STORE", "schema_version"} {
		exists, err := store.tableExists(table)
		if err != nil {
			t.Fatalf("tableExists(%q) returned unexpected error: %v", table, err)
		}
		if !exists {
			t.Errorf("tableExists(%q) = false, want true", table)
		}
	}

	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if current != latest || current < 1 {
		t.Errorf("SchemaVersion() = %d/%d, want equal and >= 1", current, latest)
	}
}

func TestGetSetDelete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	if _, ok, err := store.Get("userProfile"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Set("userProfile", []byte(`{"name":"Mina"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("userProfile", []byte(`{"name":"Jun"}`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	if err := store.Set("dailyRecords", []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := store.Get("userProfile")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if string(got) != `{"name":"Jun"}` {
		t.Errorf("Get() = %s, want overwritten value", got)
	}

	if err := store.Delete("userProfile", "dailyRecords", "missing"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := store.Get("dailyRecords"); ok {
		t.Error("dailyRecords still present after Delete()")
	}
}

func TestLoadPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Set("dailyRecords", []byte(`{"2024-01-15":{}}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	store.Close()

	reopened := NewStore(dbPath)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("dailyRecords")
	if err != nil || !ok || !strings.Contains(string(got), "2024-01-15") {
		t.Errorf("Get() after reopen = %s, %v, %v", got, ok, err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "glowup init") {
		t.Errorf("Load() error = %v, want init hint", err)
	}
}

func TestOperationsBeforeLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if _, _, err := store.Get("k"); err == nil {
		t.Error("Get() before Load should fail")
	}
	if err := store.Set("k", []byte("{}")); err == nil {
		t.Error("Set() before Load should fail")
	}
}
