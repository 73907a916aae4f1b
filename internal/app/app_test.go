package app_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/stillday/internal/app"
	"github.com/julianstephens/stillday/internal/clock"
	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/storage"
)

func newApp(t *testing.T) *app.App {
	t.Helper()

	store := storage.New(storage.NewFileMedium(t.TempDir()), zerolog.Nop())
	store.Load()

	return app.New(store)
}

func TestHabitScenario(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	habit := a.AddHabit("Hydrate")
	a.ToggleHabit(habit.ID, "2024-01-01")

	habits := a.Habits()
	assert.Len(habits, 1)
	assert.Equal(1, habits[0].Streak)
	assert.Equal(map[string]bool{"2024-01-01": true}, habits[0].Checks)

	achievements := a.Achievements()
	assert.Len(achievements, 1)
	assert.Equal("Kept habit: Hydrate", achievements[0].Text)
}

func TestPlanScenario(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	plan := a.AddPlan("Walk", "15:30")
	a.TogglePlan(plan.ID)

	assert.True(a.Plans()[0].Done)
	assert.Equal("Completed: Walk", a.Achievements()[0].Text)
}

func TestTogglePlanTwice_OneAchievement(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	plan := a.AddPlan("Walk", "")
	a.TogglePlan(plan.ID)
	a.TogglePlan(plan.ID)

	assert.False(a.Plans()[0].Done)
	assert.Len(a.Achievements(), 1)
}

func TestToggleHabitTwice_OneAchievement(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	habit := a.AddHabit("Hydrate")
	a.ToggleHabitToday(habit.ID)
	a.ToggleHabitToday(habit.ID)

	assert.Equal(0, a.Habits()[0].Streak)
	assert.False(a.Habits()[0].CheckedOn(clock.Today()))
	assert.Len(a.Achievements(), 1)
}

func TestCardMove_NoAchievement(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	card := a.CreateCard("Write first draft")
	a.MoveCard(card.ID, models.CardStatusDone)

	assert.Equal(models.CardStatusDone, a.Cards()[0].Status)
	assert.Empty(a.Achievements())
}

func TestTodaysPlans_IncludesFreshPlans(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	a.AddPlan("Walk", "")

	today := a.TodaysPlans()
	assert.Len(today, 1)
	assert.Equal(clock.Today(), today[0].DateKey)
}

func TestLoadSampleData(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	a.LoadSampleData()

	assert.True(a.Onboarded())
	assert.Len(a.Plans(), 3)
	assert.Len(a.Cards(), 3)
	assert.Len(a.Habits(), 3)
	assert.Empty(a.Achievements())

	statuses := []models.CardStatus{a.Cards()[0].Status, a.Cards()[1].Status, a.Cards()[2].Status}
	assert.Equal([]models.CardStatus{models.CardStatusTodo, models.CardStatusDoing, models.CardStatusDone}, statuses)
}

func TestLoadSampleData_NoopOnceOnboarded(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	a.Dismiss()
	a.AddHabit("Hydrate")

	a.LoadSampleData()

	assert.Len(a.Habits(), 1)
	assert.Equal("Hydrate", a.Habits()[0].Name)
	assert.Empty(a.Plans())
}

func TestDismiss_TouchesNoCollection(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	a := newApp(t)

	a.AddPlan("Walk", "")
	a.Dismiss()

	assert.True(a.Onboarded())
	assert.Len(a.Plans(), 1)
}
