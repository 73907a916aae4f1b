package models

// Habit represents a recurring practice to track
type Habit struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Checks map[string]bool `json:"checks"` // date key (YYYY-MM-DD) -> checked
	Streak int             `json:"streak"`
}

// CheckedOn reports whether the habit was checked on the given date key.
func (h Habit) CheckedOn(dateKey string) bool {
	return h.Checks[dateKey]
}
