package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddPlan, StateAddCard, StateAddHabit, StateWelcome:
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StatePlanner:
		content = docStyle.Render(m.plannerModel.View())
	case StateBoard:
		content = docStyle.Render(m.boardModel.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateTimeline:
		content = docStyle.Render(m.timelineModel.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Planner", "Board", "Habits", "Achievements"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
