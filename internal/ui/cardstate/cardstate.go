// Package cardstate tracks the expand/collapse lifecycle of the
// per-exercise cards in the session view, decoupled from rendering.
package cardstate

// Phase is the animation phase of one card.
type Phase int

const (
	Collapsed Phase = iota
	Opening
	Open
	Closing
)

// Mode selects which panel an expanded card shows.
type Mode int

const (
	ModeAdd Mode = iota
	ModeHistory
)

// Card is the state of a single exercise card. The mode stays latched
// through the Closing phase so the panel keeps rendering while the card
// animates shut.
type Card struct {
	Phase Phase
	Mode  Mode
}

// Expanded reports whether the card currently occupies panel space,
// including both animation phases.
func (c Card) Expanded() bool {
	return c.Phase != Collapsed
}

// Manager coordinates all cards of one session. At most one card may be
// opening or open at a time; toggling a second card closes the first.
type Manager struct {
	cards map[string]Card
}

// NewManager returns a manager with every card collapsed.
func NewManager() *Manager {
	return &Manager{cards: make(map[string]Card)}
}

// Card returns the state of the named card.
func (m *Manager) Card(name string) Card {
	return m.cards[name]
}

// Active returns the name of the card that is opening or open, if any.
func (m *Manager) Active() (string, bool) {
	for name, c := range m.cards {
		if c.Phase == Opening || c.Phase == Open {
			return name, true
		}
	}
	return "", false
}

// Toggle applies a user intent on one card: open it in the given mode,
// switch an already-expanded card's mode, or close it when the same mode
// is toggled again. Opening a card closes whichever card was active.
// It returns the names of cards that began animating and now need an
// AnimationDone event.
func (m *Manager) Toggle(name string, mode Mode) []string {
	var animating []string

	c := m.cards[name]
	switch c.Phase {
	case Collapsed, Closing:
		if prev, ok := m.Active(); ok && prev != name {
			pc := m.cards[prev]
			pc.Phase = Closing
			m.cards[prev] = pc
			animating = append(animating, prev)
		}
		m.cards[name] = Card{Phase: Opening, Mode: mode}
		animating = append(animating, name)

	case Opening, Open:
		if c.Mode == mode {
			c.Phase = Closing
			m.cards[name] = c
			animating = append(animating, name)
		} else {
			// Mode switch on an expanded card; no animation.
			c.Mode = mode
			m.cards[name] = c
		}
	}

	return animating
}

// AnimationDone settles a card's in-flight animation: Opening becomes
// Open, Closing becomes Collapsed. Settled phases are left untouched, so
// a late event for a card that has since been re-toggled is harmless.
func (m *Manager) AnimationDone(name string) {
	c, ok := m.cards[name]
	if !ok {
		return
	}
	switch c.Phase {
	case Opening:
		c.Phase = Open
		m.cards[name] = c
	case Closing:
		delete(m.cards, name)
	}
}

// CloseAll puts every expanded card into the Closing phase and returns
// the names that now need an AnimationDone event.
func (m *Manager) CloseAll() []string {
	var animating []string
	for name, c := range m.cards {
		if c.Phase == Opening || c.Phase == Open {
			c.Phase = Closing
			m.cards[name] = c
			animating = append(animating, name)
		}
	}
	return animating
}
