// Package biztime resolves calendar boundaries in the city's business
// timezone. Storage and transport stay in UTC; the business timezone is only
// consulted to decide which calendar day an instant belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when server.timezone is not configured.
	DefaultTimezone = "UTC"

	// DateLayout is the calendar bucket key used in reports.
	DateLayout = time.DateOnly
)

var (
	bizLocation *time.Location
	mu          sync.RWMutex
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, UTC if Init was never called.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StampUTC is NowUTC truncated to the millisecond precision timestamps are
// stored with, so a freshly created entity reads back unchanged.
func StampUTC() time.Time {
	return NowUTC().Truncate(time.Millisecond)
}

// StartOfDayUTC returns midnight of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	loc := Location()
	b := t.In(loc)
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, loc).UTC()
}

// WindowStartUTC returns the start of the oldest business day in a window of
// days calendar days ending today (inclusive).
func WindowStartUTC(now time.Time, days int) time.Time {
	loc := Location()
	b := now.In(loc)
	return time.Date(b.Year(), b.Month(), b.Day()-(days-1), 0, 0, 0, 0, loc).UTC()
}

// DateKey formats t as the YYYY-MM-DD business date it falls on.
func DateKey(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// FromMillis converts a stored epoch millisecond timestamp into UTC.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
