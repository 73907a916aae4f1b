package cli

import "fmt"

type LogCmd struct {
	Limit int `short:"n" help:"Show at most N entries." default:"0"`
}

func (c *LogCmd) Run(ctx *Context) error {
	achievements := ctx.App.Achievements()
	if len(achievements) == 0 {
		fmt.Println("No achievements yet")
		return nil
	}

	if c.Limit > 0 && len(achievements) > c.Limit {
		achievements = achievements[:c.Limit]
	}

	fmt.Println("Achievements:")
	for _, a := range achievements {
		fmt.Printf("  %s  %s\n", a.Date.Format("2006-01-02 15:04"), a.Text)
	}

	return nil
}
