package ui

import (
	"fmt"
	"strings"

	"clarity/internal/config"
	"clarity/internal/task"
)

func (m Model) View() string {
	if m.mode == modeOnboarding {
		return m.viewOnboarding()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Clarity"))
	b.WriteString("\n\n")
	if m.filterActive() {
		b.WriteString(filterStyle.Render(m.filterLine()))
		b.WriteString("\n")
	}

	visible := m.visible()
	switch {
	case len(m.tasks) == 0 && m.loadErr:
		b.WriteString(errorStyle.Render("Could not load tasks. Fix the store and restart."))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(emptyStyle.Render("No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	case len(visible) == 0:
		b.WriteString(emptyStyle.Render("No tasks match the current filter. Press 'c' to clear it."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTaskRows(visible))
	}

	b.WriteString("\n---\n")

	switch {
	case m.mode == modeForm && m.form != nil:
		b.WriteString("Task editor (tab to move, enter to save/next, esc to cancel)\n\n")
		b.WriteString(m.form.render())
		b.WriteString("\n")
		b.WriteString("Field: " + m.form.currentLabel())
		b.WriteString("\n")
		b.WriteString(m.input.View())
	case m.mode == modeSearch || m.mode == modeDate:
		b.WriteString(m.input.View())
	case m.dragging():
		b.WriteString(m.renderDragOverlay(visible))
	default:
		b.WriteString(m.renderDetailPanel(visible))
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

// headerLines is the number of lines rendered above the first task row. The
// mouse handler relies on it to map a click to a row.
func (m Model) headerLines() int {
	if m.filterActive() {
		return 3
	}
	return 2
}

func (m Model) filterLine() string {
	parts := make([]string, 0, 2)
	if m.query != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.query))
	}
	if !m.day.IsZero() {
		parts = append(parts, "date: "+task.FormatDate(m.day))
	}
	return strings.Join(parts, " • ")
}

func (m Model) renderTaskRows(visible []task.Task) string {
	var b strings.Builder
	for i, t := range visible {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		title := t.Title
		if t.Completed {
			title = doneStyle.Render(title)
		}

		row := fmt.Sprintf("%s %s %s %s", cursor, priorityBar(t.Priority), checkbox, title)
		if !t.Due.IsZero() {
			row += dueStyle.Render(" • " + task.DisplayDate(t.Due))
		}

		if m.dragging() && t.ID == m.drag.id {
			row = draggedStyle.Render(row) + " ◆"
		} else if m.cursor == i {
			row = selectedStyle.Render(row)
		}

		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// renderDragOverlay mirrors the lifted card outside the list so it stays
// readable wherever the hover target is.
func (m Model) renderDragOverlay(visible []task.Task) string {
	idx := task.IndexByID(visible, m.drag.id)
	if idx < 0 {
		return "Moving task"
	}
	t := visible[idx]
	var b strings.Builder
	b.WriteString("Moving ")
	b.WriteString(titleStyle.Render(t.Title))
	if t.Description != "" {
		b.WriteString(" — " + t.Description)
	}
	if !t.Due.IsZero() {
		b.WriteString(dueStyle.Render(" • " + task.DisplayDate(t.Due)))
	}
	b.WriteString(fmt.Sprintf("\nPosition %d of %d • enter to drop, esc to cancel", idx+1, len(visible)))
	return b.String()
}

func (m Model) renderDetailPanel(visible []task.Task) string {
	if len(visible) == 0 {
		return "No task selected"
	}
	t := visible[clampCursor(m.cursor, len(visible))]
	var b strings.Builder
	b.WriteString("Details\n")
	b.WriteString(fmt.Sprintf("Title       : %s\n", t.Title))
	b.WriteString(fmt.Sprintf("Description : %s\n", emptyPlaceholder(t.Description)))
	b.WriteString(fmt.Sprintf("Due         : %s\n", emptyPlaceholder(task.DisplayDate(t.Due))))
	b.WriteString(fmt.Sprintf("Priority    : %s\n", t.Priority.Label()))
	b.WriteString(fmt.Sprintf("Status      : %s", humanDone(t.Completed)))
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s edit • %s done • %s delete • %s grab • %s/%s shift • %s search • %s date • %s clear • %s quit",
		k.Up, k.Down, k.Add, k.Edit, humanKey(k.Toggle), k.Delete,
		k.Grab, k.MoveUp, k.MoveDown, k.Search, k.DateFilter, k.ClearFilters, k.Quit)
}

func humanKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func emptyPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(empty)"
	}
	return v
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}
