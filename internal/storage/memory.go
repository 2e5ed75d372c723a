package storage

import (
	"fmt"
	"slices"
	"sync"

	"github.com/donghyun81/daily-glow-up-compass/internal/errors"
)

// MemoryBackend keeps values in process memory. A positive capacity caps
// the total number of stored bytes, mimicking a browser storage quota.
type MemoryBackend struct {
	mu       sync.Mutex
	data     map[string][]byte
	capacity int
}

func NewMemoryBackend(capacity int) *MemoryBackend {
	return &MemoryBackend{
		data:     make(map[string][]byte),
		capacity: capacity,
	}
}

func (m *MemoryBackend) Init() error  { return nil }
func (m *MemoryBackend) Load() error  { return nil }
func (m *MemoryBackend) Close() error { return nil }

func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.capacity > 0 {
		total := len(value)
		for k, v := range m.data {
			if k != key {
				total += len(v)
			}
		}
		if total > m.capacity {
			return fmt.Errorf("%w: %d bytes requested, capacity %d", errors.ErrQuotaExceeded, total, m.capacity)
		}
	}

	m.data[key] = slices.Clone(value)
	return nil
}

func (m *MemoryBackend) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *MemoryBackend) GetConfigPath() string {
	return "memory"
}
