package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillday/internal/clock"
)

type PlanFormModel struct {
	Text string
	Time string
}

type CardFormModel struct {
	Title string
}

type HabitFormModel struct {
	Name string
}

const (
	welcomeSample = "sample"
	welcomeBlank  = "blank"
)

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

// NewPlanForm creates the add-plan form. Time is optional; when given it
// must be HH:MM.
func NewPlanForm(fm *PlanFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan").
				Description("What would you like to focus on?").
				Value(&fm.Text).
				Validate(requireText("plan text")),
			huh.NewInput().
				Title("Time (optional)").
				Description("HH:MM").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse(clock.TimeFormat, s); err != nil {
						return fmt.Errorf("use HH:MM")
					}
					return nil
				}),
		),
	)
}

func NewCardForm(fm *CardFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Card title").
				Value(&fm.Title).
				Validate(requireText("card title")),
		),
	)
}

func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&fm.Name).
				Validate(requireText("habit name")),
		),
	)
}

// NewWelcomeForm builds the one-time first-run prompt. Either choice
// marks the app onboarded; the prompt never comes back.
func NewWelcomeForm(choice *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Welcome").
				Description("This space is designed to feel unhurried and clear. Your data stays on this device.").
				Options(
					huh.NewOption("Load sample data", welcomeSample),
					huh.NewOption("Start blank", welcomeBlank),
				).
				Value(choice),
		),
	)
}
