// Package timeline renders the achievements feed. The feed is read-only:
// entries appear as plans complete and habits get checked, newest first,
// and nothing in the UI can edit or remove one.
package timeline

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/stillday/internal/models"
)

type Item struct {
	Achievement models.Achievement
}

func (i Item) Title() string { return i.Achievement.Text }

func (i Item) Description() string {
	return i.Achievement.Date.Format("2006-01-02 15:04")
}

func (i Item) FilterValue() string { return i.Achievement.Text }

type Model struct {
	list list.Model
}

func New(achievements []models.Achievement, width, height int) Model {
	l := list.New(toItems(achievements), list.NewDefaultDelegate(), width, height)
	l.Title = "Achievements"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	return Model{list: l}
}

func toItems(achievements []models.Achievement) []list.Item {
	items := make([]list.Item, len(achievements))
	for i, a := range achievements {
		items[i] = Item{Achievement: a}
	}
	return items
}

func (m *Model) SetAchievements(achievements []models.Achievement) {
	m.list.SetItems(toItems(achievements))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing here yet.\n  Complete a plan or keep a habit."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
