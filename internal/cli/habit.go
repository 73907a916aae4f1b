package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/stillday/internal/clock"
)

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Validate() error {
	if cleanText(c.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit := ctx.App.AddHabit(cleanText(c.Name))
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.App.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet")
		return nil
	}

	today := clock.Today()
	fmt.Println("Habits:")
	for _, h := range habits {
		fmt.Printf("  %s %s - streak %d (ID: %s)\n", checkbox(h.CheckedOn(today)), h.Name, h.Streak, h.ID)
	}

	return nil
}

type HabitCheckCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `short:"d" help:"Date key (YYYY-MM-DD), defaults to today."`
}

func (c *HabitCheckCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(clock.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	dateKey := c.Date
	if dateKey == "" {
		dateKey = clock.Today()
	}

	habit := ctx.App.ToggleHabit(c.ID, dateKey)
	if habit.ID == "" {
		fmt.Println("No such habit")
		return nil
	}
	fmt.Printf("%s %s on %s (streak %d)\n", checkbox(habit.CheckedOn(dateKey)), habit.Name, dateKey, habit.Streak)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	ctx.App.DeleteHabit(c.ID)
	fmt.Println("Deleted habit")
	return nil
}
