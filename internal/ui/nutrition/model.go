// Package nutrition is the daily macro tracker view: today's totals
// against the quota, the log list, and the macro entry form.
package nutrition

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nhle/gymlog/internal/keys"
	"github.com/nhle/gymlog/internal/macro"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/store"
	"github.com/nhle/gymlog/internal/theme"
)

// BackMsg is sent when the user leaves the nutrition view.
type BackMsg struct{}

// OpenFoodsMsg is sent when the user wants the saved foods manager.
type OpenFoodsMsg struct{}

// mode is the sub-state of the nutrition view.
type mode int

const (
	modeList mode = iota
	modeLogForm
	modeQuotaForm
	modeEditName
	modePickFood
)

// dataMsg carries a refreshed snapshot of the day. The token identifies
// which refresh produced it; superseded results are dropped.
type dataMsg struct {
	token  uuid.UUID
	totals model.MacroSet
	quota  model.MacroSet
	logs   []model.NutritionLog
	err    error
}

// mutationDoneMsg carries the result of any write operation.
type mutationDoneMsg struct {
	err error
}

// foodsLoadedMsg carries the saved food catalog for the picker.
type foodsLoadedMsg struct {
	foods []model.SavedFood
	err   error
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	calories string
	protein  string
	carbs    string
	fat      string
	foodName string
	foodID   int64
}

// Model is the nutrition tracker view component.
type Model struct {
	store  store.Store
	keys   *keys.KeyMap
	mode   mode
	date   string
	token  uuid.UUID
	totals model.MacroSet
	quota  model.MacroSet
	logs   []model.NutritionLog
	foods  []model.SavedFood
	cursor int

	form      *huh.Form
	fb        *formBindings
	nameInput textinput.Model
	editID    int64

	errMsg string
	width  int
	height int
}

// New creates a new nutrition model for today's date.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	ni := textinput.New()
	ni.Placeholder = "food name"
	ni.Prompt = "› "
	ni.CharLimit = 60

	return Model{
		store:     s,
		keys:      k,
		fb:        &formBindings{},
		nameInput: ni,
		width:     width,
		height:    height,
	}
}

// Init refreshes the view for today.
func (m *Model) Init() tea.Cmd {
	m.mode = modeList
	m.form = nil
	m.errMsg = ""
	m.date = model.Today()
	return m.refresh()
}

// refresh loads totals, quota, and logs for the current day under a
// fresh token.
func (m *Model) refresh() tea.Cmd {
	token := uuid.New()
	m.token = token
	s := m.store
	date := m.date
	return func() tea.Msg {
		ctx := context.Background()
		totals, err := s.NutritionTotalsForDate(ctx, date)
		if err != nil {
			return dataMsg{token: token, err: err}
		}
		quota, err := s.Quota(ctx)
		if err != nil {
			return dataMsg{token: token, err: err}
		}
		logs, err := s.NutritionLogsForDate(ctx, date)
		if err != nil {
			return dataMsg{token: token, err: err}
		}
		return dataMsg{token: token, totals: totals, quota: quota, logs: logs}
	}
}

// Update handles messages for the nutrition view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dataMsg:
		if msg.token != m.token {
			return m, nil
		}
		if msg.err != nil {
			logrus.WithError(msg.err).Error("loading nutrition data")
			m.errMsg = "could not load nutrition data"
			return m, nil
		}
		m.totals = msg.totals
		m.quota = msg.quota
		m.logs = msg.logs
		if m.cursor >= len(m.logs) {
			m.cursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Error("nutrition write failed")
			m.errMsg = "could not save, see log"
		}
		return m, m.refresh()

	case foodsLoadedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Error("loading saved foods")
			m.errMsg = "could not load saved foods"
			return m, nil
		}
		if len(msg.foods) == 0 {
			m.errMsg = "no saved foods yet"
			return m, nil
		}
		m.foods = msg.foods
		m.mode = modePickFood
		m.form = m.buildPickForm()
		return m, m.form.Init()
	}

	switch m.mode {
	case modeLogForm, modeQuotaForm, modePickFood:
		return m.updateForm(msg)
	case modeEditName:
		return m.updateEditName(msg)
	default:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateList(keyMsg)
		}
	}
	return m, nil
}

// updateList handles keys in the log list.
func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.Foods):
		return m, func() tea.Msg { return OpenFoodsMsg{} }

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.logs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.New):
		m.errMsg = ""
		*m.fb = formBindings{}
		m.mode = modeLogForm
		m.form = m.buildLogForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Quota):
		m.errMsg = ""
		*m.fb = formBindings{
			calories: formatMacro(m.quota.Calories),
			protein:  formatMacro(m.quota.Protein),
			carbs:    formatMacro(m.quota.Carbs),
			fat:      formatMacro(m.quota.Fat),
		}
		m.mode = modeQuotaForm
		m.form = m.buildQuotaForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Pick):
		m.errMsg = ""
		s := m.store
		return m, func() tea.Msg {
			foods, err := s.SavedFoods(context.Background())
			return foodsLoadedMsg{foods: foods, err: err}
		}

	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(m.logs) {
			log := m.logs[m.cursor]
			m.editID = log.ID
			m.nameInput.SetValue(log.FoodName)
			m.mode = modeEditName
			return m, m.nameInput.Focus()
		}

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.logs) {
			id := m.logs[m.cursor].ID
			s := m.store
			return m, func() tea.Msg {
				return mutationDoneMsg{
					err: s.DeleteNutritionLog(context.Background(), id),
				}
			}
		}
	}
	return m, nil
}

// updateForm delegates to the active huh form and handles completion.
func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeList
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateAborted {
		m.mode = modeList
		m.form = nil
		return m, nil
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.mode {
	case modeLogForm:
		return m.submitLogForm()
	case modeQuotaForm:
		return m.submitQuotaForm()
	default:
		return m.submitPickForm()
	}
}

// submitLogForm resolves the macro input and writes the log when the
// resolution is consistent.
func (m Model) submitLogForm() (Model, tea.Cmd) {
	res := macro.Resolve(macro.Input{
		Calories: m.fb.calories,
		Protein:  m.fb.protein,
		Carbs:    m.fb.carbs,
		Fat:      m.fb.fat,
	})

	if !res.CanSave {
		m.errMsg = "enter at least three of calories, protein, carbs, fat"
		m.form = m.buildLogForm()
		return m, m.form.Init()
	}
	if res.ShowError() {
		derived := macro.Energy(res.Protein, res.Carbs, res.Fat)
		m.errMsg = fmt.Sprintf(
			"inconsistent: macros give %.0f kcal (allowed ±%.0f)",
			derived, macro.Tolerance(derived))
		m.form = m.buildLogForm()
		return m, m.form.Init()
	}

	log := model.NutritionLog{
		Date:     m.date,
		Calories: res.Calories,
		Protein:  res.Protein,
		Carbs:    res.Carbs,
		Fat:      res.Fat,
		FoodName: strings.TrimSpace(m.fb.foodName),
	}
	m.mode = modeList
	m.form = nil
	m.errMsg = ""
	s := m.store
	return m, func() tea.Msg {
		return mutationDoneMsg{err: s.AddNutritionLog(context.Background(), log)}
	}
}

// submitQuotaForm resolves the quota input with the same macro resolver
// that backs the log form and upserts the resolution. The entered
// calories never land verbatim: with all four fields present they are
// overridden by the derived energy after the tolerance check.
func (m Model) submitQuotaForm() (Model, tea.Cmd) {
	res := macro.Resolve(macro.Input{
		Calories: m.fb.calories,
		Protein:  m.fb.protein,
		Carbs:    m.fb.carbs,
		Fat:      m.fb.fat,
	})

	if !res.CanSave {
		m.errMsg = "enter at least three of calories, protein, carbs, fat"
		m.form = m.buildQuotaForm()
		return m, m.form.Init()
	}
	if res.ShowError() {
		derived := macro.Energy(res.Protein, res.Carbs, res.Fat)
		m.errMsg = fmt.Sprintf(
			"inconsistent: macros give %.0f kcal (allowed ±%.0f)",
			derived, macro.Tolerance(derived))
		m.form = m.buildQuotaForm()
		return m, m.form.Init()
	}

	quota := res.Macros()
	m.mode = modeList
	m.form = nil
	m.errMsg = ""
	s := m.store
	return m, func() tea.Msg {
		return mutationDoneMsg{err: s.SetQuota(context.Background(), quota)}
	}
}

// submitPickForm prefills the log form from the chosen saved food.
func (m Model) submitPickForm() (Model, tea.Cmd) {
	for _, f := range m.foods {
		if f.ID == m.fb.foodID {
			*m.fb = formBindings{
				calories: formatMacro(f.Calories),
				protein:  formatMacro(f.Protein),
				carbs:    formatMacro(f.Carbs),
				fat:      formatMacro(f.Fat),
				foodName: f.Name,
			}
			break
		}
	}
	m.mode = modeLogForm
	m.form = m.buildLogForm()
	return m, m.form.Init()
}

// updateEditName handles the inline food name editor.
func (m Model) updateEditName(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			m.mode = modeList
			m.nameInput.Blur()
			return m, nil

		case key.Matches(keyMsg, m.keys.Select):
			name := m.nameInput.Value()
			id := m.editID
			m.mode = modeList
			m.nameInput.Blur()
			s := m.store
			return m, func() tea.Msg {
				return mutationDoneMsg{
					err: s.UpdateNutritionLogFoodName(
						context.Background(), id, name),
				}
			}
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) buildLogForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
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
			huh.NewInput().
				Title("Food name").
				Placeholder("optional label").
				Value(&m.fb.foodName),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) buildQuotaForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Calories target").
				Placeholder("kcal (optional)").
				Value(&m.fb.calories),
			huh.NewInput().
				Title("Protein target").
				Placeholder("g (optional)").
				Value(&m.fb.protein),
			huh.NewInput().
				Title("Carbs target").
				Placeholder("g (optional)").
				Value(&m.fb.carbs),
			huh.NewInput().
				Title("Fat target").
				Placeholder("g (optional)").
				Value(&m.fb.fat),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) buildPickForm() *huh.Form {
	opts := make([]huh.Option[int64], len(m.foods))
	for i, f := range m.foods {
		label := fmt.Sprintf("%s (%s kcal, %sP/%sC/%sF)",
			f.Name,
			formatMacro(f.Calories),
			formatMacro(f.Protein),
			formatMacro(f.Carbs),
			formatMacro(f.Fat),
		)
		opts[i] = huh.NewOption(label, f.ID)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Saved foods").
				Options(opts...).
				Value(&m.fb.foodID),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// View renders the nutrition view.
func (m Model) View() string {
	switch m.mode {
	case modeLogForm, modeQuotaForm, modePickFood:
		if m.form == nil {
			return ""
		}
		content := m.form.View()
		if m.errMsg != "" {
			content = theme.ErrorStyle.Render(m.errMsg) + "\n\n" + content
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(content)

	case modeEditName:
		content := lipgloss.JoinVertical(
			lipgloss.Left,
			theme.CardTitleStyle.Render("Edit food name"),
			"",
			m.nameInput.View(),
			"",
			theme.HelpStyle.Render("enter save | esc cancel"),
		)
		return lipgloss.NewStyle().Padding(1, 2).Render(content)
	}

	return m.renderList()
}

// renderList renders the totals block and the log list.
func (m Model) renderList() string {
	parts := []string{
		theme.CardTitleStyle.Render("Today · " + m.date),
		"",
		m.renderTotalsRow("kcal", m.totals.Calories, m.quota.Calories),
		m.renderTotalsRow("protein", m.totals.Protein, m.quota.Protein),
		m.renderTotalsRow("carbs", m.totals.Carbs, m.quota.Carbs),
		m.renderTotalsRow("fat", m.totals.Fat, m.quota.Fat),
		"",
	}

	if m.errMsg != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.errMsg), "")
	}

	if len(m.logs) == 0 {
		parts = append(parts, theme.NoDataStyle.Render("nothing logged today"))
	} else {
		for i, log := range m.logs {
			parts = append(parts, m.renderLogRow(i, log))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderTotalsRow renders one consumed-vs-target line.
func (m Model) renderTotalsRow(label string, consumed, quota float64) string {
	value := fmt.Sprintf("%s / %s", formatMacro(consumed), formatMacro(quota))
	return fmt.Sprintf("%-8s %s", label,
		theme.MacroStyle(consumed, quota).Render(value))
}

// renderLogRow renders one logged food line.
func (m Model) renderLogRow(i int, log model.NutritionLog) string {
	name := log.FoodName
	if name == "" {
		name = "(unnamed)"
	}
	row := fmt.Sprintf("%-24s %5s kcal  %sP %sC %sF",
		name,
		formatMacro(log.Calories),
		formatMacro(log.Protein),
		formatMacro(log.Carbs),
		formatMacro(log.Fat),
	)
	if i == m.cursor {
		return theme.SelectedRowStyle.Render(row)
	}
	return row
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

// formatMacro renders a macro value without trailing zeros.
func formatMacro(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

