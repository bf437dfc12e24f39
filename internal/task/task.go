package task

import (
	"errors"
	"strings"
	"time"
)

// Priority tiers, ordered from most to least urgent. The zero value is
// treated as unset and normalized to PriorityNone.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
	PriorityNone   Priority = 4
)

func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "None"
	}
}

// Normalize maps unset or out-of-range values to PriorityNone.
func (p Priority) Normalize() Priority {
	if p < PriorityHigh || p > PriorityNone {
		return PriorityNone
	}
	return p
}

var ErrEmptyTitle = errors.New("task title cannot be empty")

// Task is a single to-do item. A zero Due means the task has no due date.
// Display order is the position in the backing sequence, not a field.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Due         time.Time `json:"due_date,omitzero"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Validate rejects tasks that must not reach a store.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// New builds an unsaved task with normalized fields. The store assigns the ID.
func New(title, description string, due time.Time, priority Priority) Task {
	return Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Due:         due,
		Priority:    priority.Normalize(),
		CreatedAt:   time.Now().UTC(),
	}
}

const dateLayout = "2006-01-02"

// ParseDate reads an ISO calendar date ("2025-07-20"). Empty input means no date.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, v)
}

// FormatDate renders a date back to ISO form for editing and wire use.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// DisplayDate renders a date the way task cards show it, e.g. "Sunday, 07/20/2025".
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Monday, 01/02/2006")
}
