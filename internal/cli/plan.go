package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/stillday/internal/clock"
)

type PlanAddCmd struct {
	Text string `arg:"" help:"What to focus on."`
	Time string `short:"t" help:"Optional time (HH:MM)."`
}

func (c *PlanAddCmd) Validate() error {
	if cleanText(c.Text) == "" {
		return fmt.Errorf("plan text must not be empty")
	}
	if c.Time != "" {
		if _, err := time.Parse(clock.TimeFormat, c.Time); err != nil {
			return fmt.Errorf("invalid time format, use HH:MM: %w", err)
		}
	}
	return nil
}

func (c *PlanAddCmd) Run(ctx *Context) error {
	plan := ctx.App.AddPlan(cleanText(c.Text), c.Time)
	fmt.Printf("Added plan: %s (ID: %s)\n", plan.Text, plan.ID)
	return nil
}

type PlanListCmd struct {
	All bool `help:"Show plans from all days, not just today."`
}

func (c *PlanListCmd) Run(ctx *Context) error {
	plans := ctx.App.TodaysPlans()
	if c.All {
		plans = ctx.App.Plans()
	}

	if len(plans) == 0 {
		fmt.Println("No plans yet")
		return nil
	}

	if c.All {
		fmt.Println("All plans:")
	} else {
		fmt.Printf("Plans for %s:\n", clock.Today())
	}
	for _, p := range plans {
		timeStr := "     "
		if p.Time != "" {
			timeStr = p.Time
		}
		fmt.Printf("  %s %s  %s (ID: %s)\n", checkbox(p.Done), timeStr, p.Text, p.ID)
	}

	return nil
}

type PlanToggleCmd struct {
	ID string `arg:"" help:"Plan ID."`
}

func (c *PlanToggleCmd) Run(ctx *Context) error {
	plan := ctx.App.TogglePlan(c.ID)
	if plan.ID == "" {
		fmt.Println("No such plan")
		return nil
	}
	fmt.Printf("Toggled plan: %s %s\n", checkbox(plan.Done), plan.Text)
	return nil
}

type PlanDeleteCmd struct {
	ID string `arg:"" help:"Plan ID."`
}

func (c *PlanDeleteCmd) Run(ctx *Context) error {
	ctx.App.DeletePlan(c.ID)
	fmt.Println("Deleted plan")
	return nil
}
