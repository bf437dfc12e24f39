package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mouse support: press picks a card up, motion drags it over the list,
// release drops it on the nearest row. Releasing outside the list cancels,
// matching the keyboard escape path.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeList {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.dragging() || m.confirmDel != nil {
			return m, nil
		}
		if row, ok := m.rowAt(msg.Y); ok {
			return m.lift(row), nil
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.dragging() {
			return m, nil
		}
		return m.hoverTo(m.nearestRow(msg.Y)), nil

	case tea.MouseActionRelease:
		if !m.dragging() {
			return m, nil
		}
		if _, ok := m.rowAt(msg.Y); !ok {
			return m.cancelDrag(), nil
		}
		dropped, changed := m.drop()
		if changed {
			return dropped, dropped.persistOrder()
		}
		return dropped, nil
	}
	return m, nil
}

// rowAt maps a terminal line to a visible row index.
func (m Model) rowAt(y int) (int, bool) {
	row := y - m.headerLines()
	if row < 0 || row >= len(m.visible()) {
		return 0, false
	}
	return row, true
}

// nearestRow clamps to the closest row center, so dragging past either end
// of the list targets the first or last slot.
func (m Model) nearestRow(y int) int {
	n := len(m.visible())
	if n == 0 {
		return 0
	}
	row := y - m.headerLines()
	if row < 0 {
		return 0
	}
	if row >= n {
		return n - 1
	}
	return row
}
