package calendar

import (
	"fmt"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
)

// Clock resolves instants to Days in a single home timezone. The host's
// local zone never influences the result.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" it returns the system's local timezone; an
// empty name selects the default home timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	switch timezone {
	case "":
		return time.LoadLocation(constants.DefaultTimezone)
	case "Local":
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// NewClock returns a Clock reading the system time in the named zone.
func NewClock(timezone string) (*Clock, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixedClock returns a Clock whose notion of "now" is supplied by now.
func NewFixedClock(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{loc: loc, now: now}
}

// Location returns the home timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the home timezone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current Day in the home timezone.
func (c *Clock) Today() Day {
	return c.DayOf(c.now())
}

// DayOf converts instant into the home timezone before taking its date.
func (c *Clock) DayOf(instant time.Time) Day {
	return fromTime(instant.In(c.loc))
}
