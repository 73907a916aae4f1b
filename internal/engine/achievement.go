package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/stillday/internal/models"
)

// PlanCompleted records an achievement for a plan that just transitioned
// to done. Callers invoke this only when TogglePlan reported the
// not-done-to-done transition; toggling a plan back off never removes or
// adds anything here.
func PlanCompleted(achievements []models.Achievement, plan models.Plan, at time.Time) []models.Achievement {
	return record(achievements, "Completed: "+plan.Text, at)
}

// HabitKept records an achievement for a habit day that just became
// checked.
func HabitKept(achievements []models.Achievement, habit models.Habit, at time.Time) []models.Achievement {
	return record(achievements, "Kept habit: "+habit.Name, at)
}

func record(achievements []models.Achievement, text string, at time.Time) []models.Achievement {
	entry := models.Achievement{
		ID:   uuid.New().String(),
		Text: text,
		Date: at,
	}
	return append([]models.Achievement{entry}, achievements...)
}
