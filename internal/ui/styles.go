package ui

import (
	"github.com/charmbracelet/lipgloss"

	"clarity/internal/task"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)

	selectedStyle = lipgloss.NewStyle().Bold(true)
	// The lifted card renders dimmed, like a drag proxy at reduced opacity.
	draggedStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dueStyle     = lipgloss.NewStyle().Faint(true)

	priorityHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	priorityMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	priorityLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	priorityNone   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// priorityBar is the colored edge of a task card: red, orange, blue, gray.
func priorityBar(p task.Priority) string {
	const bar = "▌"
	switch p.Normalize() {
	case task.PriorityHigh:
		return priorityHigh.Render(bar)
	case task.PriorityMedium:
		return priorityMedium.Render(bar)
	case task.PriorityLow:
		return priorityLow.Render(bar)
	default:
		return priorityNone.Render(bar)
	}
}
