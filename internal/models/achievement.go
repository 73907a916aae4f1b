package models

import "time"

// Achievement is a derived timeline entry. Achievements are append-only:
// nothing updates or deletes one once recorded, and new entries are
// prepended so the timeline reads most-recent-first.
type Achievement struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"` // RFC3339 timestamp
}
