// Package calendar defines what "today" means for progress tracking.
//
// Streaks and last-practiced dates work on whole calendar days, never on
// rolling 24-hour windows. The day boundary is midnight in a single
// configured time zone; the default is UTC.
package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar date with no time-of-day or zone.
type Date = civil.Date

// Clock reports the current calendar date in a fixed time zone.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a Clock reading the system time in loc.
// A nil loc means UTC.
func NewClock(loc *time.Location) Clock {
	return NewClockAt(time.Now, loc)
}

// NewClockAt returns a Clock reading time from now in loc.
func NewClockAt(now func() time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Clock{now: now, loc: loc}
}

// LoadClock resolves an IANA zone name ("" = UTC) into a Clock.
func LoadClock(zone string) (Clock, error) {
	if zone == "" {
		return NewClock(time.UTC), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Clock{}, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return NewClock(loc), nil
}

// Today returns the current calendar date in the clock's zone.
func (c Clock) Today() Date {
	now := c.now
	if now == nil {
		now = time.Now
	}
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now().In(loc))
}

// Location returns the zone that defines day boundaries.
func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b Date) int {
	return b.DaysSince(a)
}
