package calendar

import (
	"fmt"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
)

// Day is a civil calendar date with no time-of-day or zone attached.
// Two Days are equal iff their year, month and day match, so Day is usable
// as a map key.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay normalizes out-of-range components the same way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a YYYY-MM-DD string. Dates that time.Parse would accept
// but that do not exist (2024-02-30) are rejected.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	d := fromTime(t)
	if d.String() != s {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// MustParseDay is ParseDay for literals; it panics on bad input.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func fromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// midnight anchors the day in UTC so arithmetic never sees a DST shift.
func (d Day) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Compare returns -1, 0 or +1 ordering lexicographically on (year, month, day).
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

// AddDays returns the date delta days later; negative deltas go back.
func (d Day) AddDays(delta int) Day {
	if delta == 0 {
		return d
	}
	return fromTime(d.midnight().AddDate(0, 0, delta))
}

// Weekday returns 0..6 with Sunday = 0.
func (d Day) Weekday() int {
	return int(d.midnight().Weekday())
}

// StartOfWeek returns the Sunday on or before d.
func (d Day) StartOfWeek() Day {
	return d.AddDays(-d.Weekday())
}

// FirstOfMonth returns day 1 of d's month.
func (d Day) FirstOfMonth() Day {
	return Day{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth returns the number of days in d's month.
func (d Day) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Day) int {
	return int(b.midnight().Sub(a.midnight()).Hours() / 24)
}

// Range returns every day from start to end inclusive, oldest first.
// An inverted range is empty.
func Range(start, end Day) []Day {
	if end.Before(start) {
		return nil
	}
	days := make([]Day, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
