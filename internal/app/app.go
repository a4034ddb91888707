// Package app holds the root Bubble Tea model: view routing, layout,
// and access to the persistence layer.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/gymlog/internal/keys"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/store"
	"github.com/nhle/gymlog/internal/ui"
	"github.com/nhle/gymlog/internal/ui/daygrid"
	"github.com/nhle/gymlog/internal/ui/foods"
	"github.com/nhle/gymlog/internal/ui/nutrition"
	"github.com/nhle/gymlog/internal/ui/session"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDayGrid ViewState = iota
	ViewSession
	ViewNutrition
	ViewFoods
)

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *store.SQLiteStore
	keys         *keys.KeyMap

	dayGrid       daygrid.Model
	sessionView   session.Model
	nutritionView nutrition.Model
	foodsView     foods.Model

	ready bool
}

// New creates a new root application model with the given store.
func New(s *store.SQLiteStore) Model {
	k := keys.DefaultKeyMap()
	return Model{
		currentView:   ViewDayGrid,
		store:         s,
		keys:          k,
		dayGrid:       daygrid.New(s, k, 80, 24),
		sessionView:   session.New(s, k, 80, 24),
		nutritionView: nutrition.New(s, k, 80, 24),
		foodsView:     foods.New(s, k, 80, 24),
	}
}

// Init returns the initial command for the day grid.
func (m Model) Init() tea.Cmd {
	return m.dayGrid.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.Width
		contentHeight := m.layout.ContentHeight()
		m.dayGrid.SetSize(contentWidth, contentHeight)
		m.sessionView.SetSize(contentWidth, contentHeight)
		m.nutritionView.SetSize(contentWidth, contentHeight)
		m.foodsView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case daygrid.DaySelectedMsg:
		m.currentView = ViewSession
		return m, m.sessionView.SetWorkout(msg.SplitIndex, msg.WorkoutID)

	case session.BackMsg:
		m.currentView = ViewDayGrid
		return m, m.dayGrid.Init()

	case nutrition.BackMsg:
		m.currentView = ViewDayGrid
		return m, m.dayGrid.Init()

	case nutrition.OpenFoodsMsg:
		m.previousView = ViewNutrition
		m.currentView = ViewFoods
		return m, m.foodsView.Init()

	case foods.BackMsg:
		if m.previousView == ViewNutrition {
			m.currentView = ViewNutrition
			return m, m.nutritionView.Init()
		}
		m.currentView = ViewDayGrid
		return m, m.dayGrid.Init()

	case tea.KeyMsg:
		// Global keys. Apart from ForceQuit they only act on the day
		// grid, which has no text inputs to steal characters from.
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			if m.currentView == ViewDayGrid {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Nutrition):
			if m.currentView == ViewDayGrid {
				m.currentView = ViewNutrition
				return m, m.nutritionView.Init()
			}

		case key.Matches(msg, m.keys.Foods):
			if m.currentView == ViewDayGrid {
				m.previousView = m.currentView
				m.currentView = ViewFoods
				return m, m.foodsView.Init()
			}
		}
	}

	// Delegate to active sub-view.
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewDayGrid:
		m.dayGrid, cmd = m.dayGrid.Update(msg)
	case ViewSession:
		m.sessionView, cmd = m.sessionView.Update(msg)
	case ViewNutrition:
		m.nutritionView, cmd = m.nutritionView.Update(msg)
	case ViewFoods:
		m.foodsView, cmd = m.foodsView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Gym Log Book", m.headerContext())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.Frame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewSession:
		return m.sessionView.View()
	case ViewNutrition:
		return m.nutritionView.View()
	case ViewFoods:
		return m.foodsView.View()
	default:
		return m.dayGrid.View()
	}
}

// headerContext returns the right-hand header string for the active view.
func (m Model) headerContext() string {
	switch m.currentView {
	case ViewSession:
		day := m.sessionView.Day()
		return fmt.Sprintf("%s · %s", day.Name, model.Today())
	default:
		return model.Today()
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewSession:
		return "a add set | H history | j/k move | esc back"
	case ViewNutrition:
		return "n log food | t targets | p saved food | e edit name | d delete | esc back"
	case ViewFoods:
		return "n new | d delete | esc back"
	default:
		return "enter start | m macros | f foods | q quit"
	}
}
