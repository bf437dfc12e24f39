package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouse(t *testing.T, m Model, action tea.MouseAction, y int) Model {
	t.Helper()
	msg := tea.MouseMsg{Y: y, Action: action, Button: tea.MouseButtonLeft}
	if action != tea.MouseActionPress {
		msg.Button = tea.MouseButtonNone
	}
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

func TestMouseDragReordersAndPersists(t *testing.T) {
	store := seededStore("A", "B", "C")
	m := newTestModel(t, store)
	top := m.headerLines()

	m = mouse(t, m, tea.MouseActionPress, top) // pick up A
	require.True(t, m.dragging())

	m = mouse(t, m, tea.MouseActionMotion, top+2)
	assert.Equal(t, []string{"B", "C", "A"}, titles(m.tasks))

	m = mouse(t, m, tea.MouseActionRelease, top+2)
	assert.False(t, m.dragging())

	persisted, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, titles(persisted))
}

func TestMouseReleaseOutsideListCancels(t *testing.T) {
	store := seededStore("A", "B", "C")
	m := newTestModel(t, store)
	top := m.headerLines()

	m = mouse(t, m, tea.MouseActionPress, top)
	m = mouse(t, m, tea.MouseActionMotion, top+1)
	require.Equal(t, []string{"B", "A", "C"}, titles(m.tasks))

	m = mouse(t, m, tea.MouseActionRelease, top+40)
	assert.False(t, m.dragging())
	assert.Equal(t, []string{"A", "B", "C"}, titles(m.tasks))
}

func TestMouseMotionPastEndsClampsToEdges(t *testing.T) {
	store := seededStore("A", "B", "C")
	m := newTestModel(t, store)
	top := m.headerLines()

	m = mouse(t, m, tea.MouseActionPress, top+1) // pick up B
	m = mouse(t, m, tea.MouseActionMotion, 0)    // above the list
	assert.Equal(t, []string{"B", "A", "C"}, titles(m.tasks))

	m = mouse(t, m, tea.MouseActionMotion, top+40) // below the list
	assert.Equal(t, []string{"A", "C", "B"}, titles(m.tasks))
}

func TestMousePressOutsideListIgnored(t *testing.T) {
	store := seededStore("A")
	m := newTestModel(t, store)

	m = mouse(t, m, tea.MouseActionPress, 0)
	assert.False(t, m.dragging())
}
