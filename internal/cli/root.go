package cli

import (
	"strings"

	"github.com/julianstephens/stillday/internal/app"
	"github.com/julianstephens/stillday/internal/models"
)

type Context struct {
	App *app.App
}

// cleanText trims surrounding whitespace. The engine stores whatever it
// is given, so refusing empty input happens here, before dispatch.
func cleanText(s string) string {
	return strings.TrimSpace(s)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func statusLabel(status models.CardStatus) string {
	switch status {
	case models.CardStatusTodo:
		return "To do"
	case models.CardStatusDoing:
		return "Doing"
	case models.CardStatusDone:
		return "Done"
	default:
		return string(status)
	}
}
