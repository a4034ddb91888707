package cardstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_OpensCollapsedCard(t *testing.T) {
	m := NewManager()

	animating := m.Toggle("Cable Row", ModeAdd)
	assert.Equal(t, []string{"Cable Row"}, animating)
	assert.Equal(t, Card{Phase: Opening, Mode: ModeAdd}, m.Card("Cable Row"))

	m.AnimationDone("Cable Row")
	assert.Equal(t, Card{Phase: Open, Mode: ModeAdd}, m.Card("Cable Row"))
}

func TestToggle_SameModeCloses(t *testing.T) {
	m := NewManager()
	m.Toggle("Cable Row", ModeHistory)
	m.AnimationDone("Cable Row")

	animating := m.Toggle("Cable Row", ModeHistory)
	assert.Equal(t, []string{"Cable Row"}, animating)

	c := m.Card("Cable Row")
	assert.Equal(t, Closing, c.Phase)
	// Mode stays latched so the closing card keeps rendering its panel.
	assert.Equal(t, ModeHistory, c.Mode)
	assert.True(t, c.Expanded())

	m.AnimationDone("Cable Row")
	assert.Equal(t, Collapsed, m.Card("Cable Row").Phase)
	assert.False(t, m.Card("Cable Row").Expanded())
}

func TestToggle_OtherModeSwitchesWithoutAnimation(t *testing.T) {
	m := NewManager()
	m.Toggle("Cable Row", ModeAdd)
	m.AnimationDone("Cable Row")

	animating := m.Toggle("Cable Row", ModeHistory)
	assert.Empty(t, animating)
	assert.Equal(t, Card{Phase: Open, Mode: ModeHistory}, m.Card("Cable Row"))
}

func TestToggle_SecondCardClosesFirst(t *testing.T) {
	m := NewManager()
	m.Toggle("Cable Row", ModeAdd)
	m.AnimationDone("Cable Row")

	animating := m.Toggle("Leg Extension", ModeHistory)
	require.Len(t, animating, 2)
	assert.Contains(t, animating, "Cable Row")
	assert.Contains(t, animating, "Leg Extension")

	assert.Equal(t, Closing, m.Card("Cable Row").Phase)
	assert.Equal(t, ModeAdd, m.Card("Cable Row").Mode)
	assert.Equal(t, Opening, m.Card("Leg Extension").Phase)

	active, ok := m.Active()
	require.True(t, ok)
	assert.Equal(t, "Leg Extension", active)
}

func TestToggle_ReopenWhileClosing(t *testing.T) {
	m := NewManager()
	m.Toggle("Elbow Plank", ModeAdd)
	m.AnimationDone("Elbow Plank")
	m.Toggle("Elbow Plank", ModeAdd) // now Closing

	animating := m.Toggle("Elbow Plank", ModeHistory)
	assert.Equal(t, []string{"Elbow Plank"}, animating)
	assert.Equal(t, Card{Phase: Opening, Mode: ModeHistory}, m.Card("Elbow Plank"))
}

func TestAnimationDone_UnknownCardIsNoop(t *testing.T) {
	m := NewManager()
	m.AnimationDone("Never Toggled")
	assert.Equal(t, Collapsed, m.Card("Never Toggled").Phase)
}

func TestCloseAll(t *testing.T) {
	m := NewManager()
	m.Toggle("Cable Row", ModeAdd)
	m.AnimationDone("Cable Row")

	animating := m.CloseAll()
	assert.Equal(t, []string{"Cable Row"}, animating)
	assert.Equal(t, Closing, m.Card("Cable Row").Phase)

	_, ok := m.Active()
	assert.False(t, ok)
}
