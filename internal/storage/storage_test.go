package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarity/internal/task"
)

func TestPatchApply(t *testing.T) {
	due, err := task.ParseDate("2025-07-20")
	require.NoError(t, err)
	base := task.Task{ID: 1, Title: "Old", Description: "desc", Due: due, Priority: task.PriorityLow}

	title := "New"
	prio := task.Priority(9)
	got := Patch{Title: &title, Priority: &prio}.Apply(base)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, due, got.Due)
	assert.Equal(t, task.PriorityNone, got.Priority)
}

func TestPatchClearDueWinsOverDue(t *testing.T) {
	due, _ := task.ParseDate("2025-07-20")
	other := time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)
	got := Patch{Due: &other, ClearDue: true}.Apply(task.Task{Title: "X", Due: due})
	assert.True(t, got.Due.IsZero())
}

func TestEmptyPatchIsIdentity(t *testing.T) {
	base := task.Task{ID: 4, Title: "Same", Completed: true}
	assert.Equal(t, base, Patch{}.Apply(base))
}
