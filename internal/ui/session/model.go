// Package session is the in-workout view: one card per exercise of the
// chosen split day, each expandable into an add form or a history table.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nhle/gymlog/internal/keys"
	"github.com/nhle/gymlog/internal/model"
	"github.com/nhle/gymlog/internal/scheme"
	"github.com/nhle/gymlog/internal/store"
	"github.com/nhle/gymlog/internal/theme"
	"github.com/nhle/gymlog/internal/ui/cardstate"
)

// historyLimit caps how many entries the history table loads.
const historyLimit = 50

// animationDuration is how long a card takes to settle open or closed.
const animationDuration = 150 * time.Millisecond

// Weight bump increments matching common plate sizes.
const (
	bumpSmall  = 1.25
	bumpMedium = 2.5
	bumpLarge  = 5
)

// BackMsg is sent when the user leaves the session view.
type BackMsg struct{}

// entryDataMsg carries the refreshed last entry and history for one
// exercise. The token identifies which refresh produced it; results from
// superseded refreshes are dropped.
type entryDataMsg struct {
	exercise string
	token    uuid.UUID
	last     *model.Entry
	history  []model.Entry
	err      error
}

// pairSavedMsg carries the result of an AddLogPair write.
type pairSavedMsg struct {
	exercise string
	err      error
}

// entryDeletedMsg carries the result of a history row deletion.
type entryDeletedMsg struct {
	exercise string
	err      error
}

// animationDoneMsg settles a card's open/close animation.
type animationDoneMsg struct {
	exercise string
}

// exerciseData is the cached per-exercise query result.
type exerciseData struct {
	last    *model.Entry
	history []model.Entry
	loaded  bool
	failed  bool
}

// Focus targets inside the add form.
const (
	focusWeight = iota
	focusTopReps
	focusBackReps
	focusCount
)

// addForm holds the state of an open add panel.
type addForm struct {
	weight  textinput.Model
	topIdx  int
	backIdx int
	focus   int
	errMsg  string
}

// Model is the session view component.
type Model struct {
	store      store.Store
	keys       *keys.KeyMap
	day        model.SplitDay
	splitIndex int
	workoutID  int64
	cards      *cardstate.Manager
	cursor     int
	data       map[string]*exerciseData
	tokens     map[string]uuid.UUID
	form       *addForm
	histCursor int
	width      int
	height     int
}

// New creates an empty session model; SetWorkout activates it.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{
		store:  s,
		keys:   k,
		cards:  cardstate.NewManager(),
		data:   make(map[string]*exerciseData),
		tokens: make(map[string]uuid.UUID),
		width:  width,
		height: height,
	}
}

// SetWorkout binds the view to a freshly started workout and kicks off a
// refresh for every exercise of the day.
func (m *Model) SetWorkout(splitIndex int, workoutID int64) tea.Cmd {
	m.day = model.Split[splitIndex]
	m.splitIndex = splitIndex
	m.workoutID = workoutID
	m.cards = cardstate.NewManager()
	m.cursor = 0
	m.form = nil
	m.data = make(map[string]*exerciseData)
	m.tokens = make(map[string]uuid.UUID)

	cmds := make([]tea.Cmd, 0, len(m.day.Exercises))
	for _, name := range m.day.Exercises {
		cmds = append(cmds, m.refreshExercise(name))
	}
	return tea.Batch(cmds...)
}

// Day returns the split day bound to this session.
func (m Model) Day() model.SplitDay {
	return m.day
}

// refreshExercise issues the last-entry and history queries for one
// exercise under a fresh token.
func (m *Model) refreshExercise(name string) tea.Cmd {
	token := uuid.New()
	m.tokens[name] = token
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		last, err := s.LastEntry(ctx, name)
		if err != nil {
			return entryDataMsg{exercise: name, token: token, err: err}
		}
		history, err := s.EntriesForExercise(ctx, name, historyLimit)
		if err != nil {
			return entryDataMsg{exercise: name, token: token, err: err}
		}
		return entryDataMsg{
			exercise: name,
			token:    token,
			last:     last,
			history:  history,
		}
	}
}

// Update handles messages for the session view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entryDataMsg:
		if m.tokens[msg.exercise] != msg.token {
			// A newer refresh is in flight; this result is stale.
			return m, nil
		}
		d := &exerciseData{loaded: true}
		if msg.err != nil {
			logrus.WithError(msg.err).WithField("exercise", msg.exercise).
				Error("loading entries")
			d.failed = true
		} else {
			d.last = msg.last
			d.history = msg.history
		}
		m.data[msg.exercise] = d
		if m.histCursor >= len(d.history) {
			m.histCursor = 0
		}
		return m, nil

	case pairSavedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).WithField("exercise", msg.exercise).
				Error("saving set pair")
			if m.form != nil {
				m.form.errMsg = "could not save, see log"
			}
			return m, nil
		}
		cmds := []tea.Cmd{m.refreshExercise(msg.exercise)}
		for _, name := range m.cards.Toggle(msg.exercise, cardstate.ModeAdd) {
			cmds = append(cmds, animationCmd(name))
		}
		m.form = nil
		return m, tea.Batch(cmds...)

	case entryDeletedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).WithField("exercise", msg.exercise).
				Error("deleting entry")
			return m, nil
		}
		return m, m.refreshExercise(msg.exercise)

	case animationDoneMsg:
		m.cards.AnimationDone(msg.exercise)
		return m, nil

	case tea.KeyMsg:
		if active, ok := m.cards.Active(); ok {
			if m.cards.Card(active).Mode == cardstate.ModeAdd {
				return m.updateAddForm(msg, active)
			}
			return m.updateHistory(msg, active)
		}
		return m.updateCollapsed(msg)
	}

	if m.form != nil && m.form.focus == focusWeight {
		var cmd tea.Cmd
		m.form.weight, cmd = m.form.weight.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateCollapsed handles keys while no card is expanded.
func (m Model) updateCollapsed(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.day.Exercises)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Select):
		return m.openCard(m.day.Exercises[m.cursor], cardstate.ModeAdd)
	case key.Matches(msg, m.keys.History):
		return m.openCard(m.day.Exercises[m.cursor], cardstate.ModeHistory)
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }
	}
	return m, nil
}

// openCard expands one card, closing whichever card was active, and
// re-fetches the exercise so the panel shows fresh data.
func (m Model) openCard(name string, mode cardstate.Mode) (Model, tea.Cmd) {
	cmds := []tea.Cmd{m.refreshExercise(name)}
	for _, animating := range m.cards.Toggle(name, mode) {
		cmds = append(cmds, animationCmd(animating))
	}

	if m.cards.Card(name).Mode == cardstate.ModeAdd {
		m.form = m.newAddForm(name)
		cmds = append(cmds, textinput.Blink)
	} else {
		m.form = nil
		m.histCursor = 0
	}
	return m, tea.Batch(cmds...)
}

// closeCard collapses the active card.
func (m Model) closeCard(name string) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, animating := range m.cards.Toggle(name, m.cards.Card(name).Mode) {
		cmds = append(cmds, animationCmd(animating))
	}
	m.form = nil
	return m, tea.Batch(cmds...)
}

// newAddForm builds the add panel, prefilled from the last entry.
func (m Model) newAddForm(name string) *addForm {
	sch := scheme.Resolve(name)
	vals := sch.Values()

	weight := textinput.New()
	weight.Placeholder = "0"
	weight.Prompt = ""
	weight.Width = 8
	weight.Focus()

	f := &addForm{weight: weight}
	if d, ok := m.data[name]; ok && d.last != nil {
		f.weight.SetValue(model.FormatWeight(d.last.Weight))
		if d.last.TopReps != nil {
			f.topIdx = nearestIndex(vals, sch.Clamp(*d.last.TopReps))
		}
		if d.last.BackReps != nil {
			f.backIdx = nearestIndex(vals, sch.Clamp(*d.last.BackReps))
		}
	}
	return f
}

// nearestIndex returns the index of the largest value not exceeding reps.
func nearestIndex(vals []int, reps int) int {
	idx := 0
	for i, v := range vals {
		if v <= reps {
			idx = i
		}
	}
	return idx
}

// updateAddForm handles keys while the add panel is open.
func (m Model) updateAddForm(msg tea.KeyMsg, name string) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	sch := scheme.Resolve(name)
	vals := sch.Values()

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.closeCard(name)

	case key.Matches(msg, m.keys.History) && m.form.focus != focusWeight:
		return m.openCard(name, cardstate.ModeHistory)

	case key.Matches(msg, m.keys.Select):
		return m.submitAddForm(name, sch, vals)

	case msg.String() == "tab", msg.String() == "down":
		m.form.focus = (m.form.focus + 1) % focusCount
		return m.syncFormFocus()

	case msg.String() == "shift+tab", msg.String() == "up":
		m.form.focus = (m.form.focus + focusCount - 1) % focusCount
		return m.syncFormFocus()
	}

	if m.form.focus == focusWeight {
		var cmd tea.Cmd
		m.form.weight, cmd = m.form.weight.Update(msg)
		return m, cmd
	}

	// Rep pickers and weight bumps only act while the text input is not
	// capturing digits.
	switch {
	case key.Matches(msg, m.keys.Left):
		idx := m.pickerIndex()
		if *idx > 0 {
			*idx--
		}
	case key.Matches(msg, m.keys.Right):
		idx := m.pickerIndex()
		if *idx < len(vals)-1 {
			*idx++
		}
	case key.Matches(msg, m.keys.BumpSmall):
		m.bumpWeight(bumpSmall)
	case key.Matches(msg, m.keys.BumpMedium):
		m.bumpWeight(bumpMedium)
	case key.Matches(msg, m.keys.BumpLarge):
		m.bumpWeight(bumpLarge)
	}
	return m, nil
}

// pickerIndex returns a pointer to the focused rep picker's index.
func (m *Model) pickerIndex() *int {
	if m.form.focus == focusTopReps {
		return &m.form.topIdx
	}
	return &m.form.backIdx
}

// syncFormFocus focuses or blurs the weight input to match form focus.
func (m Model) syncFormFocus() (Model, tea.Cmd) {
	if m.form.focus == focusWeight {
		return m, m.form.weight.Focus()
	}
	m.form.weight.Blur()
	return m, nil
}

// bumpWeight adds a plate increment to the weight field.
func (m *Model) bumpWeight(delta float64) {
	w, err := parseWeight(m.form.weight.Value())
	if err != nil {
		w = 0
	}
	m.form.weight.SetValue(model.FormatWeight(w + delta))
}

// parseWeight parses a non-negative weight, accepting a comma separator.
func parseWeight(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	w, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing weight %q: %w", raw, err)
	}
	if w < 0 {
		return 0, fmt.Errorf("weight must not be negative")
	}
	return w, nil
}

// submitAddForm validates the form and writes the set pair.
func (m Model) submitAddForm(
	name string,
	sch scheme.Scheme,
	vals []int,
) (Model, tea.Cmd) {
	w, err := parseWeight(m.form.weight.Value())
	if err != nil {
		m.form.errMsg = "enter a valid non-negative weight"
		return m, nil
	}
	m.form.errMsg = ""

	pair := store.LogPair{
		WorkoutID:    m.workoutID,
		ExerciseName: name,
		Date:         model.Now(),
		Weight:       w,
		Unit:         model.UnitKg,
		TopReps:      sch.Clamp(vals[m.form.topIdx]),
		BackOffReps:  sch.Clamp(vals[m.form.backIdx]),
	}
	s := m.store
	return m, func() tea.Msg {
		return pairSavedMsg{
			exercise: name,
			err:      s.AddLogPair(context.Background(), pair),
		}
	}
}

// updateHistory handles keys while the history panel is open.
func (m Model) updateHistory(msg tea.KeyMsg, name string) (Model, tea.Cmd) {
	history := m.historyFor(name)

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.History):
		return m.closeCard(name)

	case key.Matches(msg, m.keys.Add):
		return m.openCard(name, cardstate.ModeAdd)

	case key.Matches(msg, m.keys.Down):
		if m.histCursor < len(history)-1 {
			m.histCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.histCursor > 0 {
			m.histCursor--
		}
	case key.Matches(msg, m.keys.Delete):
		if m.histCursor < len(history) {
			date := history[m.histCursor].Date
			s := m.store
			return m, func() tea.Msg {
				return entryDeletedMsg{
					exercise: name,
					err:      s.DeleteEntry(context.Background(), name, date),
				}
			}
		}
	}
	return m, nil
}

// historyFor returns the cached history for one exercise.
func (m Model) historyFor(name string) []model.Entry {
	if d, ok := m.data[name]; ok {
		return d.history
	}
	return nil
}

// animationCmd schedules the settle event for one card.
func animationCmd(name string) tea.Cmd {
	return tea.Tick(animationDuration, func(time.Time) tea.Msg {
		return animationDoneMsg{exercise: name}
	})
}

// View renders the exercise cards of the day.
func (m Model) View() string {
	if len(m.day.Exercises) == 0 {
		return ""
	}

	cardWidth := m.width - 4
	if cardWidth < 40 {
		cardWidth = 40
	}

	parts := make([]string, 0, len(m.day.Exercises))
	for i, name := range m.day.Exercises {
		parts = append(parts, m.renderCard(i, name, cardWidth))
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderCard renders one exercise card, with its panel when expanded.
func (m Model) renderCard(i int, name string, width int) string {
	card := m.cards.Card(name)

	header := m.renderCardHeader(i, name)
	content := header
	if card.Expanded() {
		var panel string
		if card.Mode == cardstate.ModeAdd {
			panel = m.renderAddPanel(name)
		} else {
			panel = m.renderHistoryPanel(name)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, header, panel)
	}

	style := theme.CardStyle
	if i == m.cursor || card.Expanded() {
		style = theme.CardFocusedStyle
	}
	return style.Width(width).Render(content)
}

// renderCardHeader renders the exercise name and last-entry summary.
func (m Model) renderCardHeader(i int, name string) string {
	title := theme.CardTitleStyle.Render(name)

	var summary string
	d, ok := m.data[name]
	switch {
	case !ok || !d.loaded:
		summary = theme.HelpStyle.Render("loading…")
	case d.failed:
		summary = theme.ErrorStyle.Render("failed to load")
	case d.last == nil || !d.last.HasReps():
		summary = theme.NoDataStyle.Render("No data")
	default:
		summary = d.last.FormatLine()
		sch := scheme.Resolve(name)
		if sch.ReadyToUpgrade(d.last.TopReps, d.last.BackReps) {
			summary += "  " + theme.UpgradeStyle.Render("▲ upgrade")
		}
	}

	return title + "\n" + summary
}

// renderAddPanel renders the weight input and the two rep pickers.
func (m Model) renderAddPanel(name string) string {
	if m.form == nil {
		return ""
	}
	sch := scheme.Resolve(name)
	vals := sch.Values()

	weightLabel := "Weight (kg)"
	if m.form.focus == focusWeight {
		weightLabel = theme.SelectedRowStyle.Render(weightLabel)
	}
	weightRow := fmt.Sprintf("%s  %s  %s",
		weightLabel,
		m.form.weight.View(),
		theme.HelpStyle.Render("1/2/3 +1.25/+2.5/+5"),
	)

	topRow := m.renderPicker("Top set", vals[m.form.topIdx],
		sch.UnitLabel, m.form.focus == focusTopReps)
	backRow := m.renderPicker("Back-off", vals[m.form.backIdx],
		sch.UnitLabel, m.form.focus == focusBackReps)

	rows := []string{weightRow, topRow, backRow}
	if m.form.errMsg != "" {
		rows = append(rows, theme.ErrorStyle.Render(m.form.errMsg))
	}
	rows = append(rows,
		theme.HelpStyle.Render("enter save | tab next | esc cancel"))

	return theme.PanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderPicker renders one milestone rep picker row.
func (m Model) renderPicker(label string, value int, unit string, focused bool) string {
	row := fmt.Sprintf("%-9s ‹ %d %s ›", label, value, unit)
	if focused {
		return theme.SelectedRowStyle.Render(row)
	}
	return row
}

// renderHistoryPanel renders the entry history table.
func (m Model) renderHistoryPanel(name string) string {
	history := m.historyFor(name)
	if len(history) == 0 {
		return theme.PanelStyle.Render(
			theme.NoDataStyle.Render("no history yet"))
	}

	rows := []string{
		theme.HelpStyle.Render(
			fmt.Sprintf("%-8s %-6s %-6s %s", "weight", "set 1", "set 2", "date")),
	}
	for i, e := range history {
		row := fmt.Sprintf("%-8s %-6s %-6s %s",
			model.FormatWeight(e.Weight)+e.Unit,
			formatRepCell(e.TopReps),
			formatRepCell(e.BackReps),
			model.FormatDayMonthYear(e.Date),
		)
		if i == m.histCursor {
			row = theme.SelectedRowStyle.Render(row)
		}
		rows = append(rows, row)
	}
	rows = append(rows, theme.HelpStyle.Render("d delete | esc close"))

	return theme.PanelStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatRepCell(r *int) string {
	if r == nil {
		return "—"
	}
	return strconv.Itoa(*r)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
