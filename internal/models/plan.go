package models

// Plan is a single entry in the daily planner. A plan is scoped to the
// calendar day it was created on and keeps that date key for life; the
// "today" view is a filter over DateKey, never a rewrite of it.
type Plan struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Time    string `json:"time,omitempty"` // HH:MM format, empty means untimed
	Done    bool   `json:"done"`
	DateKey string `json:"date_key"` // YYYY-MM-DD format
}
