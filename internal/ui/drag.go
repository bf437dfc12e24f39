package ui

import (
	"clarity/internal/task"
)

// dragState tracks one drag gesture. The gesture is strictly ordered: a lift
// from the idle state, any number of hover moves, then a drop or a cancel.
// snapshot holds the full pre-drag order so cancel can restore it exactly.
type dragState struct {
	id       int64
	snapshot []task.Task
}

func (m Model) dragging() bool { return m.drag != nil }

// lift enters the dragging state for the visible row at index.
func (m Model) lift(index int) Model {
	visible := m.visible()
	if index < 0 || index >= len(visible) {
		return m
	}
	snapshot := make([]task.Task, len(m.tasks))
	copy(snapshot, m.tasks)
	m.drag = &dragState{id: visible[index].ID, snapshot: snapshot}
	m.cursor = index
	m.status = "Moving task: j/k to move, enter to drop, esc to cancel"
	return m
}

// hoverTo moves the lifted task to the given visible index, reordering the
// working copy live. Hidden tasks keep their slots in the backing sequence.
func (m Model) hoverTo(to int) Model {
	if !m.dragging() {
		return m
	}
	visible := m.visible()
	from := task.IndexByID(visible, m.drag.id)
	if from < 0 || to < 0 || to >= len(visible) || from == to {
		return m
	}
	m.tasks = task.ReorderVisible(m.tasks, visible, from, to)
	m.cursor = to
	return m
}

// drop leaves the dragging state and persists the new order. Dropping with
// no net movement is a no-op; a failed write is logged and the optimistic
// order stays on screen.
func (m Model) drop() (Model, bool) {
	if !m.dragging() {
		return m, false
	}
	changed := !sameOrder(m.tasks, m.drag.snapshot)
	m.drag = nil
	if !changed {
		m.status = "Order unchanged"
		return m, false
	}
	m.status = "Order saved"
	return m, true
}

// cancelDrag restores the pre-drag order with no partial mutation.
func (m Model) cancelDrag() Model {
	if !m.dragging() {
		return m
	}
	m.tasks = m.drag.snapshot
	if idx := task.IndexByID(m.visible(), m.drag.id); idx >= 0 {
		m.cursor = idx
	}
	m.drag = nil
	m.status = "Move cancelled"
	return m
}

// stepMove is the single-step keyboard alternative: move the cursor row one
// position and commit immediately.
func (m Model) stepMove(delta int) (Model, bool) {
	visible := m.visible()
	if len(visible) == 0 {
		return m, false
	}
	from := m.cursor
	to := from + delta
	if to < 0 || to >= len(visible) {
		return m, false
	}
	m.tasks = task.ReorderVisible(m.tasks, visible, from, to)
	m.cursor = to
	m.status = "Order saved"
	return m, true
}

func sameOrder(a, b []task.Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
