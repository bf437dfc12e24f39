package ui

import (
	"fmt"
	"strconv"
	"strings"

	"clarity/internal/storage"
	"clarity/internal/task"
)

// formState walks the task editor fields with a single shared text input,
// one field at a time.
type formState struct {
	taskID      int64 // 0 while creating
	title       string
	description string
	due         string
	priority    string
	index       int
}

func formFields() []string {
	return []string{"title", "description", "due date (YYYY-MM-DD)", "priority (1=High 2=Medium 3=Low 4=None)"}
}

func newFormState(t *task.Task) *formState {
	if t == nil {
		return &formState{priority: strconv.Itoa(int(task.PriorityNone))}
	}
	return &formState{
		taskID:      t.ID,
		title:       t.Title,
		description: t.Description,
		due:         task.FormatDate(t.Due),
		priority:    strconv.Itoa(int(t.Priority)),
	}
}

func (f *formState) currentLabel() string {
	return formFields()[f.index]
}

func (f *formState) currentValue() string {
	switch f.index {
	case 0:
		return f.title
	case 1:
		return f.description
	case 2:
		return f.due
	case 3:
		return f.priority
	default:
		return ""
	}
}

func (f *formState) setCurrentValue(v string) {
	switch f.index {
	case 0:
		f.title = v
	case 1:
		f.description = v
	case 2:
		f.due = v
	case 3:
		f.priority = v
	}
}

func (f *formState) lastField() bool {
	return f.index >= len(formFields())-1
}

// build turns the collected input into either a new task or a patch.
func (f *formState) build() (task.Task, storage.Patch, error) {
	if strings.TrimSpace(f.title) == "" {
		return task.Task{}, storage.Patch{}, task.ErrEmptyTitle
	}
	due, err := task.ParseDate(f.due)
	if err != nil {
		return task.Task{}, storage.Patch{}, fmt.Errorf("due date invalid: %w", err)
	}
	priority, err := parsePriority(f.priority)
	if err != nil {
		return task.Task{}, storage.Patch{}, fmt.Errorf("priority invalid: %w", err)
	}

	if f.taskID == 0 {
		return task.New(f.title, f.description, due, priority), storage.Patch{}, nil
	}

	title := strings.TrimSpace(f.title)
	description := strings.TrimSpace(f.description)
	p := storage.Patch{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
	}
	if due.IsZero() {
		p.ClearDue = true
	} else {
		p.Due = &due
	}
	return task.Task{}, p, nil
}

func parsePriority(v string) (task.Priority, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return task.PriorityNone, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < int(task.PriorityHigh) || n > int(task.PriorityNone) {
		return 0, fmt.Errorf("priority must be 1-4, got %d", n)
	}
	return task.Priority(n), nil
}

func (f *formState) render() string {
	fields := formFields()
	values := []string{f.title, f.description, f.due, f.priority}
	var b strings.Builder
	for i, name := range fields {
		prefix := " "
		if i == f.index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-38s : %s\n", prefix, name, val))
	}
	return b.String()
}
