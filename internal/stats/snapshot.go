package stats

import (
	"slices"

	"github.com/donghyun81/daily-glow-up-compass/internal/calendar"
	"github.com/donghyun81/daily-glow-up-compass/internal/logger"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

// Snapshot is an immutable, date-indexed view of every stored record.
type Snapshot struct {
	records map[calendar.Day]models.DayRecord
	skipped []string
}

// NewSnapshot indexes records by day. Keys that are not valid dates, or
// whose record carries a different date, are skipped and logged.
func NewSnapshot(records map[string]models.DayRecord) Snapshot {
	s := Snapshot{records: make(map[calendar.Day]models.DayRecord, len(records))}

	for key, rec := range records {
		day, err := calendar.ParseDay(key)
		if err != nil {
			logger.Warn("Skipping record with malformed date key", "key", key, "error", err)
			s.skipped = append(s.skipped, key)
			continue
		}
		if rec.Date != "" && rec.Date != key {
			logger.Warn("Skipping record whose date disagrees with its key", "key", key, "date", rec.Date)
			s.skipped = append(s.skipped, key)
			continue
		}
		s.records[day] = rec.Clone()
	}

	slices.Sort(s.skipped)
	return s
}

// Get returns a copy of the record for day, or nil.
func (s Snapshot) Get(day calendar.Day) *models.DayRecord {
	rec, ok := s.records[day]
	if !ok {
		return nil
	}
	out := rec.Clone()
	return &out
}

// Len is the number of indexed records.
func (s Snapshot) Len() int {
	return len(s.records)
}

// Days returns every indexed day, oldest first.
func (s Snapshot) Days() []calendar.Day {
	days := make([]calendar.Day, 0, len(s.records))
	for d := range s.records {
		days = append(days, d)
	}
	slices.SortFunc(days, calendar.Day.Compare)
	return days
}

// Skipped lists the keys NewSnapshot refused, sorted.
func (s Snapshot) Skipped() []string {
	return slices.Clone(s.skipped)
}

// RecordedDays counts days with content.
func (s Snapshot) RecordedDays() int {
	n := 0
	for _, rec := range s.records {
		if HasContent(&rec) {
			n++
		}
	}
	return n
}
