package storage

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/errors"
	"github.com/donghyun81/daily-glow-up-compass/internal/logger"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

// RecordStore persists the profile and the per-day records as two JSON
// documents in a Backend. Writes are last-writer-wins; there is a single
// writer.
type RecordStore struct {
	backend  Backend
	now      func() time.Time
	maxBytes int
}

type Option func(*RecordStore)

// WithNow overrides the timestamp source used for createdAt/updatedAt.
func WithNow(now func() time.Time) Option {
	return func(s *RecordStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxBytes caps the size of a single serialized document. Zero means
// unlimited.
func WithMaxBytes(n int) Option {
	return func(s *RecordStore) {
		s.maxBytes = n
	}
}

func NewRecordStore(backend Backend, opts ...Option) *RecordStore {
	s := &RecordStore{
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the underlying key-value backend.
func (s *RecordStore) Backend() Backend {
	return s.backend
}

// SaveProfile overwrites the stored profile. A zero CreatedAt is stamped
// with the current time.
func (s *RecordStore) SaveProfile(p models.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now().UTC()
	}
	if p.Goals == nil {
		p.Goals = []models.GoalID{}
	}
	return s.put(constants.KeyUserProfile, p)
}

// LoadProfile returns nil, nil when no profile has been saved.
func (s *RecordStore) LoadProfile() (*models.Profile, error) {
	var p models.Profile
	found, err := s.get(constants.KeyUserProfile, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// SaveDayRecord replaces the record stored under day. An empty rec.Date is
// filled from day; a different date is rejected.
func (s *RecordStore) SaveDayRecord(day calendar.Day, rec models.DayRecord) error {
	key := day.String()
	if rec.Date == "" {
		rec.Date = key
	} else if rec.Date != key {
		return errors.NewValidation("date", "record date %q does not match day %s", rec.Date, key)
	}

	records, err := s.loadRecords()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	rec = rec.Clone()
	if existing, ok := records[key]; ok && !existing.CreatedAt.IsZero() {
		rec.CreatedAt = existing.CreatedAt
	} else {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	records[key] = rec
	if err := s.put(constants.KeyDailyRecords, records); err != nil {
		return err
	}

	logger.Debug("Saved day record", "date", key, "goals", len(rec.RecordedGoals()))
	return nil
}

// LoadDayRecord returns nil, nil when day has no record.
func (s *RecordStore) LoadDayRecord(day calendar.Day) (*models.DayRecord, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}
	rec, ok := records[day.String()]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// LoadAllDayRecords returns a snapshot of every stored record keyed by
// date string. Later writes are not reflected in the returned map.
func (s *RecordStore) LoadAllDayRecords() (map[string]models.DayRecord, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}
	return maps.Clone(records), nil
}

// ClearAll removes the profile and every day record.
func (s *RecordStore) ClearAll() error {
	if err := s.backend.Delete(constants.KeyUserProfile, constants.KeyDailyRecords); err != nil {
		return errors.NewPersistence("delete", "", err)
	}
	logger.Info("Cleared all stored data", "backend", s.backend.GetConfigPath())
	return nil
}

func (s *RecordStore) loadRecords() (map[string]models.DayRecord, error) {
	records := make(map[string]models.DayRecord)
	if _, err := s.get(constants.KeyDailyRecords, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = make(map[string]models.DayRecord)
	}
	for k, rec := range records {
		rec.Normalize()
		records[k] = rec
	}
	return records, nil
}

func (s *RecordStore) get(key string, v any) (bool, error) {
	data, found, err := s.backend.Get(key)
	if err != nil {
		return false, errors.NewPersistence("read", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.NewPersistence("decode", key, err)
	}
	return true, nil
}

func (s *RecordStore) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewPersistence("encode", key, err)
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return errors.NewPersistence("write", key,
			fmt.Errorf("%w: %d bytes exceeds limit of %d", errors.ErrQuotaExceeded, len(data), s.maxBytes))
	}
	if err := s.backend.Set(key, data); err != nil {
		return errors.NewPersistence("write", key, err)
	}
	return nil
}
