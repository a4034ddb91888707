// Package foods manages the saved food catalog: reusable macro templates
// that prefill the nutrition log form.
package foods

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/nhle/gymlog/internal/keys"
	"github.com/nhle/gymlog/internal/macro"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/store"
	"github.com/nhle/gymlog/internal/theme"
)

// BackMsg is sent when the user leaves the foods view.
type BackMsg struct{}

// foodsMsg carries the loaded catalog.
type foodsMsg struct {
	foods []model.SavedFood
	err   error
}

// mutationDoneMsg carries the result of an add or delete.
type mutationDoneMsg struct {
	err error
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name     string
	calories string
	protein  string
	carbs    string
	fat      string
}

// Model is the saved foods manager view.
type Model struct {
	store  store.Store
	keys   *keys.KeyMap
	foods  []model.SavedFood
	cursor int
	form   *huh.Form
	fb     *formBindings
	errMsg string
	width  int
	height int
}

// New creates a new foods model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{
		store:  s,
		keys:   k,
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Init loads the catalog.
func (m *Model) Init() tea.Cmd {
	m.form = nil
	m.errMsg = ""
	s := m.store
	return func() tea.Msg {
		foods, err := s.SavedFoods(context.Background())
		return foodsMsg{foods: foods, err: err}
	}
}

// Update handles messages for the foods view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case foodsMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Error("loading saved foods")
			m.errMsg = "could not load saved foods"
			return m, nil
		}
		m.foods = msg.foods
		if m.cursor >= len(m.foods) {
			m.cursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Error("saved food write failed")
			m.errMsg = "could not save, see log"
		}
		return m, m.Init()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.updateList(keyMsg)
	}
	return m, nil
}

// updateList handles keys in the catalog list.
func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.foods)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.New):
		m.errMsg = ""
		*m.fb = formBindings{}
		m.form = m.buildForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.foods) {
			id := m.foods[m.cursor].ID
			s := m.store
			return m, func() tea.Msg {
				return mutationDoneMsg{
					err: s.DeleteSavedFood(context.Background(), id),
				}
			}
		}
	}
	return m, nil
}

// updateForm delegates to the add form and handles completion. The macro
// resolver fills a missing value the same way the log form does, so a
// template saved with three fields stays consistent with what logging it
// would write.
func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, nil
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	res := macro.Resolve(macro.Input{
		Calories: m.fb.calories,
		Protein:  m.fb.protein,
		Carbs:    m.fb.carbs,
		Fat:      m.fb.fat,
	})
	if !res.CanSave {
		m.errMsg = "enter at least three of calories, protein, carbs, fat"
		m.form = m.buildForm()
		return m, m.form.Init()
	}
	if res.ShowError() {
		derived := macro.Energy(res.Protein, res.Carbs, res.Fat)
		m.errMsg = fmt.Sprintf(
			"inconsistent: macros give %.0f kcal (allowed ±%.0f)",
			derived, macro.Tolerance(derived))
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	food := model.SavedFood{
		Name:     strings.TrimSpace(m.fb.name),
		Calories: res.Calories,
		Protein:  res.Protein,
		Carbs:    res.Carbs,
		Fat:      res.Fat,
	}
	m.form = nil
	m.errMsg = ""
	s := m.store
	return m, func() tea.Msg {
		return mutationDoneMsg{err: s.AddSavedFood(context.Background(), food)}
	}
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("e.g. Protein Shake").
				Value(&m.fb.name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Calories").
				Placeholder("kcal (optional)").
				Value(&m.fb.calories),
			huh.NewInput().
				Title("Protein").
				Placeholder("g (optional)").
				Value(&m.fb.protein),
			huh.NewInput().
				Title("Carbs").
				Placeholder("g (optional)").
				Value(&m.fb.carbs),
			huh.NewInput().
				Title("Fat").
				Placeholder("g (optional)").
				Value(&m.fb.fat),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// View renders the foods view.
func (m Model) View() string {
	if m.form != nil {
		content := m.form.View()
		if m.errMsg != "" {
			content = theme.ErrorStyle.Render(m.errMsg) + "\n\n" + content
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(content)
	}

	parts := []string{
		theme.CardTitleStyle.Render("Saved foods"),
		"",
	}
	if m.errMsg != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.errMsg), "")
	}

	if len(m.foods) == 0 {
		parts = append(parts, theme.NoDataStyle.Render("no saved foods yet"))
	} else {
		for i, f := range m.foods {
			row := fmt.Sprintf("%-24s %5s kcal  %sP %sC %sF",
				f.Name,
				formatMacro(f.Calories),
				formatMacro(f.Protein),
				formatMacro(f.Carbs),
				formatMacro(f.Fat),
			)
			if i == m.cursor {
				row = theme.SelectedRowStyle.Render(row)
			}
			parts = append(parts, row)
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func formatMacro(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
