package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// JSONFileBackend stores every key as a member of one JSON object on disk.
// Each Set rewrites the whole file.
type JSONFileBackend struct {
	path string
	data map[string]json.RawMessage
}

func NewJSONFileBackend(path string) *JSONFileBackend {
	return &JSONFileBackend{
		path: path,
	}
}

func (s *JSONFileBackend) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.data = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONFileBackend) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'glowup init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = make(map[string]json.RawMessage)
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	return nil
}

func (s *JSONFileBackend) Close() error {
	return nil
}

func (s *JSONFileBackend) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Replace atomically via a temp file in the same directory.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONFileBackend) Get(key string) ([]byte, bool, error) {
	if s.data == nil {
		return nil, false, errNotLoaded
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return buf.Bytes(), true, nil
}

func (s *JSONFileBackend) Set(key string, value []byte) error {
	if s.data == nil {
		return errNotLoaded
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}

	prev, existed := s.data[key]
	s.data[key] = json.RawMessage(slices.Clone(value))
	if err := s.save(); err != nil {
		if existed {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *JSONFileBackend) Delete(keys ...string) error {
	if s.data == nil {
		return errNotLoaded
	}
	removed := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := s.data[k]; ok {
			removed[k] = v
			delete(s.data, k)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if err := s.save(); err != nil {
		for k, v := range removed {
			s.data[k] = v
		}
		return err
	}
	return nil
}

func (s *JSONFileBackend) GetConfigPath() string {
	return s.path
}
