package cli

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/models"
)

type BoardAddCmd struct {
	Title string `arg:"" help:"Card title."`
}

func (c *BoardAddCmd) Validate() error {
	if cleanText(c.Title) == "" {
		return fmt.Errorf("card title must not be empty")
	}
	return nil
}

func (c *BoardAddCmd) Run(ctx *Context) error {
	card := ctx.App.CreateCard(cleanText(c.Title))
	fmt.Printf("Added card: %s (ID: %s)\n", card.Title, card.ID)
	return nil
}

type BoardListCmd struct{}

func (c *BoardListCmd) Run(ctx *Context) error {
	cards := ctx.App.Cards()
	if len(cards) == 0 {
		fmt.Println("No cards yet")
		return nil
	}

	for _, status := range []models.CardStatus{models.CardStatusTodo, models.CardStatusDoing, models.CardStatusDone} {
		fmt.Printf("%s:\n", statusLabel(status))
		empty := true
		for _, card := range cards {
			if card.Status == status {
				fmt.Printf("  %s (ID: %s)\n", card.Title, card.ID)
				empty = false
			}
		}
		if empty {
			fmt.Println("  (none)")
		}
	}

	return nil
}

type BoardMoveCmd struct {
	ID     string `arg:"" help:"Card ID."`
	Status string `arg:"" enum:"todo,doing,done" help:"Target column (todo|doing|done)."`
}

func (c *BoardMoveCmd) Run(ctx *Context) error {
	ctx.App.MoveCard(c.ID, models.CardStatus(c.Status))
	fmt.Printf("Moved card to %s\n", c.Status)
	return nil
}

type BoardDeleteCmd struct {
	ID string `arg:"" help:"Card ID."`
}

func (c *BoardDeleteCmd) Run(ctx *Context) error {
	ctx.App.DeleteCard(c.ID)
	fmt.Println("Deleted card")
	return nil
}
