package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down  key.Binding
	Up    key.Binding
	Left  key.Binding
	Right key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Exercise card panels
	Add     key.Binding
	History key.Binding

	// Row actions
	Delete key.Binding
	Edit   key.Binding
	New    key.Binding

	// Weight bumps in the add form
	BumpSmall  key.Binding
	BumpMedium key.Binding
	BumpLarge  key.Binding

	// View switching
	Nutrition key.Binding
	Foods     key.Binding
	Quota     key.Binding
	Pick      key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add set"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit name"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		BumpSmall: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "+1.25"),
		),
		BumpMedium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "+2.5"),
		),
		BumpLarge: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "+5"),
		),
		Nutrition: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "macros"),
		),
		Foods: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "saved foods"),
		),
		Quota: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "targets"),
		),
		Pick: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pick saved food"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Back, k.Quit, k.ForceQuit},
		{k.Add, k.History, k.Delete, k.Edit, k.New},
		{k.BumpSmall, k.BumpMedium, k.BumpLarge},
		{k.Nutrition, k.Foods, k.Quota, k.Pick},
	}
}
