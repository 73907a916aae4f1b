// Package engine holds the pure collection mutations. Every operation is
// a function of (current collection, arguments) returning a fresh
// collection; nothing here reads the clock or touches storage. The date
// key for date-scoped operations is always passed in by the caller.
//
// Targeted operations on an id that is not present return the collection
// unchanged. Text validation (trimming, refusing empty input) is the
// caller's job; the engine stores whatever it is given.
package engine

import (
	"github.com/google/uuid"

	"github.com/julianstephens/stillday/internal/models"
)

// AddPlan creates a new plan scoped to dateKey and prepends it, keeping
// the collection in most-recent-first order.
func AddPlan(plans []models.Plan, text, timeStr, dateKey string) []models.Plan {
	plan := models.Plan{
		ID:      uuid.New().String(),
		Text:    text,
		Time:    timeStr,
		Done:    false,
		DateKey: dateKey,
	}
	return append([]models.Plan{plan}, plans...)
}

// TogglePlan flips the done flag of the plan with the given id. It
// returns the new collection, the toggled plan, and whether the toggle
// transitioned the plan from not-done to done (the signal the
// achievement deriver consumes).
func TogglePlan(plans []models.Plan, id string) ([]models.Plan, models.Plan, bool) {
	for i, p := range plans {
		if p.ID != id {
			continue
		}
		next := make([]models.Plan, len(plans))
		copy(next, plans)
		next[i].Done = !p.Done
		return next, next[i], next[i].Done
	}
	return plans, models.Plan{}, false
}

// DeletePlan removes the plan with the given id if present.
func DeletePlan(plans []models.Plan, id string) []models.Plan {
	next := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return next
}

// TodaysPlans returns the subset of plans scoped to the given date key.
// Plans from prior days stay in the collection; they are just not
// surfaced here.
func TodaysPlans(plans []models.Plan, dateKey string) []models.Plan {
	today := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		if p.DateKey == dateKey {
			today = append(today, p)
		}
	}
	return today
}

// CreateCard creates a new board card in the todo column and prepends it.
func CreateCard(cards []models.Card, title string) []models.Card {
	card := models.Card{
		ID:     uuid.New().String(),
		Title:  title,
		Status: models.CardStatusTodo,
	}
	return append([]models.Card{card}, cards...)
}

// MoveCard reassigns the status of the card with the given id. Statuses
// are not validated here; callers offer a closed choice.
func MoveCard(cards []models.Card, id string, status models.CardStatus) []models.Card {
	for i, c := range cards {
		if c.ID != id {
			continue
		}
		next := make([]models.Card, len(cards))
		copy(next, cards)
		next[i].Status = status
		return next
	}
	return cards
}

// DeleteCard removes the card with the given id if present.
func DeleteCard(cards []models.Card, id string) []models.Card {
	next := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != id {
			next = append(next, c)
		}
	}
	return next
}

// AddHabit creates a new habit with no check-ins and a zero streak,
// prepended.
func AddHabit(habits []models.Habit, name string) []models.Habit {
	habit := models.Habit{
		ID:     uuid.New().String(),
		Name:   name,
		Checks: map[string]bool{},
		Streak: 0,
	}
	return append([]models.Habit{habit}, habits...)
}

// ToggleHabit flips the habit's check-in for the given date key and
// adjusts the streak: +1 when a day becomes checked, -1 (never below
// zero) when a day becomes unchecked. The streak is a net tally of
// check-ins, not a consecutive-day count, and the same rule applies no
// matter which date key is toggled. Returns the new collection, the
// updated habit, and whether the day transitioned unchecked-to-checked.
func ToggleHabit(habits []models.Habit, id, dateKey string) ([]models.Habit, models.Habit, bool) {
	for i, h := range habits {
		if h.ID != id {
			continue
		}
		checked := !h.Checks[dateKey]

		checks := make(map[string]bool, len(h.Checks)+1)
		for k, v := range h.Checks {
			checks[k] = v
		}
		checks[dateKey] = checked

		streak := h.Streak
		if checked {
			streak++
		} else if streak > 0 {
			streak--
		}

		next := make([]models.Habit, len(habits))
		copy(next, habits)
		next[i].Checks = checks
		next[i].Streak = streak
		return next, next[i], checked
	}
	return habits, models.Habit{}, false
}

// DeleteHabit removes the habit with the given id if present.
func DeleteHabit(habits []models.Habit, id string) []models.Habit {
	next := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			next = append(next, h)
		}
	}
	return next
}
