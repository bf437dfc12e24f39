package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, v string) time.Time {
	t.Helper()
	day, err := ParseDate(v)
	require.NoError(t, err)
	return day
}

func TestFilterSearch(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Call mom"},
	}

	got := Filter(tasks, "mom", time.Time{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got = Filter(tasks, "", time.Time{})
	assert.Len(t, got, 2)

	got = Filter(tasks, "MOM", time.Time{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterSearchMatchesDescription(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Errands", Description: "Pick up milk and eggs"},
		{ID: 2, Title: "Gym"},
	}
	got := Filter(tasks, "milk", time.Time{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterByDay(t *testing.T) {
	d20 := mustDay(t, "2025-07-20")
	d21 := mustDay(t, "2025-07-21")
	tasks := []Task{
		{ID: 1, Title: "First", Due: d20},
		{ID: 2, Title: "Second", Due: d21},
		{ID: 3, Title: "Undated"},
	}

	got := Filter(tasks, "", d20)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterExcludesUndatedUnderDayFilter(t *testing.T) {
	tasks := []Task{{ID: 1, Title: "Report"}}
	got := Filter(tasks, "report", mustDay(t, "2025-07-20"))
	assert.Empty(t, got)
}

func TestFilterCombinesWithAnd(t *testing.T) {
	tasks := []Task{{ID: 1, Title: "Report", Due: mustDay(t, "2025-07-21")}}
	got := Filter(tasks, "Report", mustDay(t, "2025-07-20"))
	assert.Empty(t, got)
}

func TestFilterMatchesDifferentTimeOfDay(t *testing.T) {
	noon := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	tasks := []Task{{ID: 1, Title: "Lunch", Due: noon}}
	got := Filter(tasks, "", mustDay(t, "2025-07-20"))
	assert.Len(t, got, 1)
}

func TestFilterIsPure(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Call mom"},
		{ID: 3, Title: "Walk dog"},
	}
	before := make([]Task, len(tasks))
	copy(before, tasks)

	first := Filter(tasks, "o", time.Time{})
	second := Filter(tasks, "o", time.Time{})

	assert.Equal(t, before, tasks)
	assert.Equal(t, first, second)
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "alpha"},
		{ID: 2, Title: "beta"},
		{ID: 3, Title: "alphabet"},
	}
	got := Filter(tasks, "alpha", time.Time{})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}
