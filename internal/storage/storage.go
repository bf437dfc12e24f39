package storage

import (
	"context"
	"errors"
	"time"

	"clarity/internal/task"
)

var ErrNotFound = errors.New("task not found")

// Patch carries a partial update; nil fields are left untouched. ClearDue
// removes the due date regardless of Due.
type Patch struct {
	Title       *string
	Description *string
	Due         *time.Time
	ClearDue    bool
	Priority    *task.Priority
	Completed   *bool
}

// Apply folds the patch into t and returns the result.
func (p Patch) Apply(t task.Task) task.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ClearDue {
		t.Due = time.Time{}
	} else if p.Due != nil {
		t.Due = *p.Due
	}
	if p.Priority != nil {
		t.Priority = p.Priority.Normalize()
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// Store persists the ordered task sequence. The sequence order returned by
// LoadAll is the sole source of truth for display order; SaveAll rewrites it
// wholesale with last-write-wins semantics.
type Store interface {
	LoadAll(ctx context.Context) ([]task.Task, error)
	SaveAll(ctx context.Context, tasks []task.Task) error

	// Create validates the task, assigns an ID and appends it to the end of
	// the sequence.
	Create(ctx context.Context, t task.Task) (task.Task, error)

	// Update applies a partial edit. Unknown ids return ErrNotFound.
	Update(ctx context.Context, id int64, p Patch) (task.Task, error)

	// Delete removes a task. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id int64) error

	Close() error
}
