package app

import (
	"github.com/google/uuid"

	"github.com/julianstephens/stillday/internal/clock"
	"github.com/julianstephens/stillday/internal/models"
)

// LoadSampleData replaces the planner, board, and habits with a small
// illustrative set and clears the timeline, then marks the app
// onboarded. Once onboarded the call is a no-op, so user data can never
// be overwritten after first run.
func (a *App) LoadSampleData() {
	if a.store.Onboarded() {
		return
	}

	d := clock.Today()
	a.store.SetPlans([]models.Plan{
		{ID: uuid.New().String(), Text: "Morning stretch", Time: "07:30", DateKey: d},
		{ID: uuid.New().String(), Text: "Deep work block", Time: "09:00", DateKey: d},
		{ID: uuid.New().String(), Text: "Walk outside", Time: "15:30", DateKey: d},
	})
	a.store.SetCards([]models.Card{
		{ID: uuid.New().String(), Title: "Outline concept", Status: models.CardStatusTodo},
		{ID: uuid.New().String(), Title: "Write first draft", Status: models.CardStatusDoing},
		{ID: uuid.New().String(), Title: "Review notes", Status: models.CardStatusDone},
	})
	a.store.SetHabits([]models.Habit{
		{ID: uuid.New().String(), Name: "Hydrate", Checks: map[string]bool{}},
		{ID: uuid.New().String(), Name: "Read 10 pages", Checks: map[string]bool{}},
		{ID: uuid.New().String(), Name: "Evening reflection", Checks: map[string]bool{}},
	})
	a.store.SetAchievements([]models.Achievement{})
	a.store.SetOnboarded(true)
}

// Dismiss marks the app onboarded without touching any collection. There
// is no way back: the welcome prompt and the seeding affordance are gone
// for the lifetime of the stored state.
func (a *App) Dismiss() {
	a.store.SetOnboarded(true)
}
