package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stillday/internal/app"
	"github.com/julianstephens/stillday/internal/clock"
	"github.com/julianstephens/stillday/internal/tui/components/board"
	"github.com/julianstephens/stillday/internal/tui/components/habits"
	"github.com/julianstephens/stillday/internal/tui/components/planner"
	"github.com/julianstephens/stillday/internal/tui/components/timeline"
)

type SessionState int

const (
	StatePlanner SessionState = iota
	StateBoard
	StateHabits
	StateTimeline
	StateAddPlan
	StateAddCard
	StateAddHabit
	StateWelcome
)

// tabCount covers only the tab states; the form and welcome states are
// overlays reached from a tab.
const tabCount = 4

type Model struct {
	app           *app.App
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	plannerModel  planner.Model
	boardModel    board.Model
	habitsModel   habits.Model
	timelineModel timeline.Model
	form          *huh.Form
	planForm      *PlanFormModel
	cardForm      *CardFormModel
	habitForm     *HabitFormModel
	welcomeChoice *string
	quitting      bool
	width         int
	height        int
}

func NewModel(a *app.App) Model {
	m := Model{
		app:           a,
		state:         StatePlanner,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		plannerModel:  planner.New(a.TodaysPlans(), 0, 0),
		boardModel:    board.New(a.Cards(), 0, 0),
		habitsModel:   habits.New(a.Habits(), clock.Today(), 0, 0),
		timelineModel: timeline.New(a.Achievements(), 0, 0),
	}

	if !a.Onboarded() {
		m.previousState = StatePlanner
		m.state = StateWelcome
		// The form writes through a shared pointer because bubbletea
		// copies the model by value on every update.
		m.welcomeChoice = new(string)
		m.form = NewWelcomeForm(m.welcomeChoice)
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StatePlanner, StateBoard, StateHabits:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StatePlanner, StateBoard, StateHabits:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// refresh re-reads every collection from the app. Mutations replace
// collections wholesale, so components just reload their items.
func (m *Model) refresh() {
	m.plannerModel.SetPlans(m.app.TodaysPlans())
	m.boardModel.SetCards(m.app.Cards())
	m.habitsModel.SetHabits(m.app.Habits(), clock.Today())
	m.timelineModel.SetAchievements(m.app.Achievements())
}
