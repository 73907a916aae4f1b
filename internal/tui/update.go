package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillday/internal/tui/components/board"
	"github.com/julianstephens/stillday/internal/tui/components/habits"
	"github.com/julianstephens/stillday/internal/tui/components/planner"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.plannerModel.SetSize(msg.Width, contentHeight)
		m.boardModel.SetSize(msg.Width, contentHeight)
		m.habitsModel.SetSize(msg.Width, contentHeight)
		m.timelineModel.SetSize(msg.Width, contentHeight)
		return m, nil
	}

	switch m.state {
	case StateAddPlan, StateAddCard, StateAddHabit, StateWelcome:
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	if handled, cmd := m.handleComponentMsg(msg); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.state {
	case StatePlanner:
		m.plannerModel, cmd = m.plannerModel.Update(msg)
	case StateBoard:
		m.boardModel, cmd = m.boardModel.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case StateTimeline:
		m.timelineModel, cmd = m.timelineModel.Update(msg)
	}

	return m, cmd
}

// handleComponentMsg dispatches the messages components emit to the app
// and refreshes views after each mutation.
func (m *Model) handleComponentMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case planner.AddPlanMsg:
		m.planForm = &PlanFormModel{}
		m.form = NewPlanForm(m.planForm)
		m.previousState = m.state
		m.state = StateAddPlan
		return true, m.form.Init()

	case planner.TogglePlanMsg:
		m.app.TogglePlan(msg.ID)
		m.refresh()
		return true, nil

	case planner.DeletePlanMsg:
		m.app.DeletePlan(msg.ID)
		m.refresh()
		return true, nil

	case board.AddCardMsg:
		m.cardForm = &CardFormModel{}
		m.form = NewCardForm(m.cardForm)
		m.previousState = m.state
		m.state = StateAddCard
		return true, m.form.Init()

	case board.MoveCardMsg:
		m.app.MoveCard(msg.ID, msg.Status)
		m.refresh()
		return true, nil

	case board.DeleteCardMsg:
		m.app.DeleteCard(msg.ID)
		m.refresh()
		return true, nil

	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return true, m.form.Init()

	case habits.CheckHabitMsg:
		m.app.ToggleHabitToday(msg.ID)
		m.refresh()
		return true, nil

	case habits.DeleteHabitMsg:
		m.app.DeleteHabit(msg.ID)
		m.refresh()
		return true, nil
	}

	return false, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The welcome prompt has no escape hatch other than its two choices;
	// the add forms cancel back to their tab.
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc && m.state != StateWelcome {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.completeForm()
	case huh.StateAborted:
		if m.state == StateWelcome {
			// Walking away from the prompt counts as starting blank.
			m.app.Dismiss()
		}
		m.state = m.previousState
		m.form = nil
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) completeForm() {
	switch m.state {
	case StateAddPlan:
		m.app.AddPlan(strings.TrimSpace(m.planForm.Text), strings.TrimSpace(m.planForm.Time))
	case StateAddCard:
		m.app.CreateCard(strings.TrimSpace(m.cardForm.Title))
	case StateAddHabit:
		m.app.AddHabit(strings.TrimSpace(m.habitForm.Name))
	case StateWelcome:
		if m.welcomeChoice != nil && *m.welcomeChoice == welcomeSample {
			m.app.LoadSampleData()
		} else {
			m.app.Dismiss()
		}
	}

	m.refresh()
	m.state = m.previousState
	m.form = nil
}
