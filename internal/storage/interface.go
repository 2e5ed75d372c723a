package storage

import "errors"

// Backend is the key-value store the RecordStore persists through. Values
// are opaque JSON documents; a Backend never interprets them.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	// Delete removes every named key; missing keys are ignored.
	Delete(keys ...string) error

	// Utils
	GetConfigPath() string
}

var errNotLoaded = errors.New("storage not loaded")
