// Package clock produces calendar date keys. A date key identifies one
// calendar day in the process's local timezone, so two instants on the
// same local day always share a key.
package clock

import "time"

// DateFormat is the canonical date key layout (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// TimeFormat is the HH:MM layout used for plan times.
const TimeFormat = "15:04"

// Key returns the date key for the given instant.
func Key(t time.Time) string {
	return t.Format(DateFormat)
}

// Today returns the date key for the current instant. Callers performing
// date-scoped operations must call this at the moment of the operation
// rather than caching it, so a session that crosses midnight scopes new
// entries to the new day.
func Today() string {
	return Key(time.Now())
}
