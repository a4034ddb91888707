// Package daygrid renders the six split days as a 3x2 grid of buttons.
package daygrid

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/nhle/gymlog/internal/keys"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/store"
	"github.com/nhle/gymlog/internal/theme"
)

const columns = 2

// DaySelectedMsg is sent when the user picks a split day. A workout row
// has already been created by the time this message is dispatched.
type DaySelectedMsg struct {
	SplitIndex int
	WorkoutID  int64
}

// lastWorkoutMsg carries the most recently completed workout, if any.
type lastWorkoutMsg struct {
	workout *model.Workout
}

// workoutStartedMsg carries the result of the start-workout insert.
type workoutStartedMsg struct {
	splitIndex int
	workoutID  int64
	err        error
}

// Model is the split day picker view.
type Model struct {
	store  store.Store
	keys   *keys.KeyMap
	cursor int
	last   *model.Workout
	errMsg string
	width  int
	height int
}

// New creates a new day grid model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{
		store:  s,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init loads the last completed workout for the subtitle line.
func (m Model) Init() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		w, err := s.LastCompletedWorkout(context.Background())
		if err != nil {
			logrus.WithError(err).Error("loading last completed workout")
			return lastWorkoutMsg{}
		}
		return lastWorkoutMsg{workout: w}
	}
}

// Update handles messages for the day grid view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lastWorkoutMsg:
		m.last = msg.workout
		return m, nil

	case workoutStartedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Error("starting workout")
			m.errMsg = "could not start workout"
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg {
			return DaySelectedMsg{
				SplitIndex: msg.splitIndex,
				WorkoutID:  msg.workoutID,
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Down):
			if m.cursor+columns < len(model.Split) {
				m.cursor += columns
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor-columns >= 0 {
				m.cursor -= columns
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursor%columns > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor%columns < columns-1 && m.cursor+1 < len(model.Split) {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m, m.startWorkout(m.cursor)
		}
	}

	return m, nil
}

// startWorkout inserts a workout row for the chosen day.
func (m Model) startWorkout(splitIndex int) tea.Cmd {
	s := m.store
	day := model.Split[splitIndex]
	return func() tea.Msg {
		id, err := s.StartWorkout(
			context.Background(),
			splitIndex,
			day.Name,
			model.Now(),
		)
		return workoutStartedMsg{splitIndex: splitIndex, workoutID: id, err: err}
	}
}

// View renders the 3x2 day grid.
func (m Model) View() string {
	buttonWidth := m.width/columns - 6
	if buttonWidth < 20 {
		buttonWidth = 20
	}

	var rows []string
	for rowStart := 0; rowStart < len(model.Split); rowStart += columns {
		var buttons []string
		for i := rowStart; i < rowStart+columns && i < len(model.Split); i++ {
			buttons = append(buttons, m.renderDay(i, buttonWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var footer string
	if m.errMsg != "" {
		footer = theme.ErrorStyle.Render(m.errMsg)
	} else if m.last != nil {
		footer = theme.HelpStyle.Render(
			"last completed: " + m.last.PlannedName)
	}
	if footer != "" {
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, "", footer)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(grid)
}

// renderDay renders one day button.
func (m Model) renderDay(i, width int) string {
	day := model.Split[i]
	label := fmt.Sprintf("Day %d", i+1)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.CardTitleStyle.Render(label),
		day.Subtitle(),
	)

	style := theme.DayButtonStyle
	if i == m.cursor {
		style = theme.DayButtonFocusedStyle
	}
	return style.Width(width).Render(content)
}

// SetSize updates the grid dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
