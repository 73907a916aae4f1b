package cli

import "fmt"

type WelcomeSampleCmd struct{}

func (c *WelcomeSampleCmd) Run(ctx *Context) error {
	if ctx.App.Onboarded() {
		fmt.Println("Already onboarded, keeping your data")
		return nil
	}
	ctx.App.LoadSampleData()
	fmt.Println("Loaded sample data")
	return nil
}

type WelcomeDismissCmd struct{}

func (c *WelcomeDismissCmd) Run(ctx *Context) error {
	ctx.App.Dismiss()
	fmt.Println("Starting blank")
	return nil
}
