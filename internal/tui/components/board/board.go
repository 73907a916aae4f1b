package board

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/stillday/internal/models"
)

type AddCardMsg struct{}

type MoveCardMsg struct {
	ID     string
	Status models.CardStatus
}

type DeleteCardMsg struct {
	ID string
}

type Item struct {
	Card models.Card
}

func (i Item) Title() string { return i.Card.Title }

func (i Item) Description() string {
	switch i.Card.Status {
	case models.CardStatusTodo:
		return "to do"
	case models.CardStatusDoing:
		return "doing"
	case models.CardStatusDone:
		return "done"
	default:
		return string(i.Card.Status)
	}
}

func (i Item) FilterValue() string { return i.Card.Title }

type KeyMap struct {
	Add    key.Binding
	Todo   key.Binding
	Doing  key.Binding
	Done   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Todo: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "to do"),
		),
		Doing: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "doing"),
		),
		Done: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(cards []models.Card, width, height int) Model {
	l := list.New(toItems(cards), list.NewDefaultDelegate(), width, height)
	l.Title = "Board"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Todo, keys.Doing, keys.Done, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Todo, keys.Doing, keys.Done, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(cards []models.Card) []list.Item {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = Item{Card: c}
	}
	return items
}

func (m *Model) SetCards(cards []models.Card) {
	m.list.SetItems(toItems(cards))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddCardMsg{} }
		case key.Matches(msg, m.keys.Todo):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MoveCardMsg{ID: i.Card.ID, Status: models.CardStatusTodo} }
			}
		case key.Matches(msg, m.keys.Doing):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MoveCardMsg{ID: i.Card.ID, Status: models.CardStatusDoing} }
			}
		case key.Matches(msg, m.keys.Done):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MoveCardMsg{ID: i.Card.ID, Status: models.CardStatusDone} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteCardMsg{ID: i.Card.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  The board is empty.\n  Press 'a' to add a card."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
