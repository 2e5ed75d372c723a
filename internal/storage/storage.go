package storage

import (
	"path/filepath"
	"strings"

	"github.com/donghyun81/daily-glow-up-compass/internal/storage/postgres"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/redis"
	"github.com/donghyun81/daily-glow-up-compass/internal/storage/sqlite"
)

// Kind names a backend family.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindRedis    Kind = "redis"
	KindJSON     Kind = "json"
	KindMemory   Kind = "memory"
)

// DetectKind maps a storage location to its backend family: postgres and
// redis URLs by scheme, ".json" paths to the JSON file store, ":memory:"
// to the in-process store and anything else to a SQLite file.
func DetectKind(location string) Kind {
	switch {
	case postgres.IsURL(location):
		return KindPostgres
	case redis.IsURL(location):
		return KindRedis
	case location == ":memory:":
		return KindMemory
	case strings.EqualFold(filepath.Ext(location), ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// Open builds the backend for location without connecting to it. The
// caller runs Init or Load.
func Open(location string) Backend {
	switch DetectKind(location) {
	case KindPostgres:
		return postgres.New(location)
	case KindRedis:
		return redis.New(location)
	case KindMemory:
		return NewMemoryBackend(0)
	case KindJSON:
		return NewJSONFileBackend(location)
	default:
		return sqlite.NewStore(location)
	}
}

// Migrator is implemented by SQL backends with a versioned schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}
