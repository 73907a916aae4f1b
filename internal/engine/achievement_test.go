package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/stillday/internal/models"
)

func TestPlanCompleted_PrependsTemplatedEntry(t *testing.T) {
	at := time.Date(2024, 3, 2, 16, 0, 0, 0, time.Local)
	existing := []models.Achievement{{ID: "old", Text: "Kept habit: Hydrate", Date: at.Add(-time.Hour)}}

	achievements := PlanCompleted(existing, models.Plan{Text: "Walk"}, at)

	if len(achievements) != 2 {
		t.Fatalf("expected 2 achievements, got %d", len(achievements))
	}
	if achievements[0].Text != "Completed: Walk" {
		t.Errorf("expected templated text, got %q", achievements[0].Text)
	}
	if !achievements[0].Date.Equal(at) {
		t.Errorf("expected timestamp %v, got %v", at, achievements[0].Date)
	}
	if achievements[1].ID != "old" {
		t.Error("existing entries must keep their order after the new one")
	}
}

func TestHabitKept_TemplatedText(t *testing.T) {
	achievements := HabitKept(nil, models.Habit{Name: "Hydrate"}, time.Now())

	if achievements[0].Text != "Kept habit: Hydrate" {
		t.Errorf("expected templated text, got %q", achievements[0].Text)
	}
	if achievements[0].ID == "" {
		t.Error("expected a generated id")
	}
}
