// Package app wires the mutation engine to the store. Each action reads
// the relevant collection, applies the engine mutation, derives an
// achievement when the mutation signals a completion, and saves every
// touched collection immediately. Actions are synchronous and applied
// one at a time.
package app

import (
	"time"

	"github.com/julianstephens/stillday/internal/clock"
	"github.com/julianstephens/stillday/internal/engine"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/storage"
)

type App struct {
	store *storage.Store
}

func New(store *storage.Store) *App {
	return &App{store: store}
}

func (a *App) Plans() []models.Plan { return a.store.Plans() }

// TodaysPlans filters the planner to the current day. The date key is
// read fresh on every call so a session crossing midnight rolls over.
func (a *App) TodaysPlans() []models.Plan {
	return engine.TodaysPlans(a.store.Plans(), clock.Today())
}

// AddPlan creates a plan scoped to today. Callers must trim and refuse
// empty text before dispatching.
func (a *App) AddPlan(text, timeStr string) models.Plan {
	plans := engine.AddPlan(a.store.Plans(), text, timeStr, clock.Today())
	a.store.SetPlans(plans)
	return plans[0]
}

// TogglePlan flips a plan's done flag and records an achievement when the
// plan transitions to done. Unknown ids are a silent no-op.
func (a *App) TogglePlan(id string) models.Plan {
	plans, plan, becameDone := engine.TogglePlan(a.store.Plans(), id)
	a.store.SetPlans(plans)
	if becameDone {
		a.store.SetAchievements(engine.PlanCompleted(a.store.Achievements(), plan, time.Now()))
	}
	return plan
}

func (a *App) DeletePlan(id string) {
	a.store.SetPlans(engine.DeletePlan(a.store.Plans(), id))
}

func (a *App) Cards() []models.Card { return a.store.Cards() }

func (a *App) CreateCard(title string) models.Card {
	cards := engine.CreateCard(a.store.Cards(), title)
	a.store.SetCards(cards)
	return cards[0]
}

func (a *App) MoveCard(id string, status models.CardStatus) {
	a.store.SetCards(engine.MoveCard(a.store.Cards(), id, status))
}

func (a *App) DeleteCard(id string) {
	a.store.SetCards(engine.DeleteCard(a.store.Cards(), id))
}

func (a *App) Habits() []models.Habit { return a.store.Habits() }

func (a *App) AddHabit(name string) models.Habit {
	habits := engine.AddHabit(a.store.Habits(), name)
	a.store.SetHabits(habits)
	return habits[0]
}

// ToggleHabit flips a habit's check-in for the given date key and
// records an achievement when the day becomes checked.
func (a *App) ToggleHabit(id, dateKey string) models.Habit {
	habits, habit, becameChecked := engine.ToggleHabit(a.store.Habits(), id, dateKey)
	a.store.SetHabits(habits)
	if becameChecked {
		a.store.SetAchievements(engine.HabitKept(a.store.Achievements(), habit, time.Now()))
	}
	return habit
}

// ToggleHabitToday toggles the habit's check-in for the current day.
func (a *App) ToggleHabitToday(id string) models.Habit {
	return a.ToggleHabit(id, clock.Today())
}

func (a *App) DeleteHabit(id string) {
	a.store.SetHabits(engine.DeleteHabit(a.store.Habits(), id))
}

func (a *App) Achievements() []models.Achievement { return a.store.Achievements() }

func (a *App) Onboarded() bool { return a.store.Onboarded() }
