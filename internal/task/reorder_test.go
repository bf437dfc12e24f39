package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(ids ...int64) []Task {
	out := make([]Task, len(ids))
	for i, id := range ids {
		out[i] = Task{ID: id}
	}
	return out
}

func idsOf(tasks []Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestMove(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []int64
	}{
		{"forward", 0, 2, []int64{2, 3, 1, 4}},
		{"backward", 3, 0, []int64{4, 1, 2, 3}},
		{"adjacent", 1, 2, []int64{1, 3, 2, 4}},
		{"noop same index", 2, 2, []int64{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Move(seq(1, 2, 3, 4), tc.from, tc.to)
			assert.Equal(t, tc.want, idsOf(got))
		})
	}
}

func TestMoveOutOfRangeIsNoop(t *testing.T) {
	in := seq(1, 2, 3)
	assert.Equal(t, idsOf(in), idsOf(Move(in, -1, 1)))
	assert.Equal(t, idsOf(in), idsOf(Move(in, 0, 3)))
}

func TestMoveIsPermutation(t *testing.T) {
	in := seq(1, 2, 3, 4, 5)
	for from := 0; from < len(in); from++ {
		for to := 0; to < len(in); to++ {
			got := Move(in, from, to)
			require.Len(t, got, len(in))
			seen := make(map[int64]bool, len(got))
			for _, task := range got {
				assert.False(t, seen[task.ID], "duplicated id %d", task.ID)
				seen[task.ID] = true
			}
			if from != to {
				assert.Equal(t, in[from].ID, got[to].ID)
			}
		}
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	in := seq(1, 2, 3, 4)
	before := idsOf(in)
	Move(in, 0, 3)
	assert.Equal(t, before, idsOf(in))
}

// Dragging C above A while a day filter hides B must swap A and C in the
// backing sequence and leave B exactly where it was.
func TestReorderVisibleKeepsHiddenSlots(t *testing.T) {
	d1, _ := ParseDate("2025-07-20")
	d2, _ := ParseDate("2025-07-21")
	full := []Task{
		{ID: 1, Title: "A", Due: d1},
		{ID: 2, Title: "B", Due: d2},
		{ID: 3, Title: "C", Due: d1},
	}

	visible := Filter(full, "", d1)
	require.Equal(t, []int64{1, 3}, idsOf(visible))

	got := ReorderVisible(full, visible, 1, 0)
	assert.Equal(t, []int64{3, 2, 1}, idsOf(got))
}

func TestReorderVisibleWithoutFilterIsArrayMove(t *testing.T) {
	full := seq(1, 2, 3, 4)
	visible := Filter(full, "", time.Time{})

	got := ReorderVisible(full, visible, 3, 1)
	assert.Equal(t, []int64{1, 4, 2, 3}, idsOf(got))
	assert.Equal(t, idsOf(Move(full, 3, 1)), idsOf(got))
}

func TestReorderVisibleNoopOnSameSlot(t *testing.T) {
	full := seq(1, 2, 3)
	got := ReorderVisible(full, full, 1, 1)
	assert.Equal(t, idsOf(full), idsOf(got))
}

func TestReorderVisibleStaleViewIsNoop(t *testing.T) {
	full := seq(1, 2, 3)
	stale := seq(1, 9)
	got := ReorderVisible(full, stale, 1, 0)
	assert.Equal(t, idsOf(full), idsOf(got))
}

func TestReorderVisibleIsPermutationOfFull(t *testing.T) {
	d1, _ := ParseDate("2025-07-20")
	full := []Task{
		{ID: 1, Due: d1}, {ID: 2}, {ID: 3, Due: d1}, {ID: 4}, {ID: 5, Due: d1},
	}
	visible := Filter(full, "", d1)
	require.Len(t, visible, 3)

	for from := 0; from < len(visible); from++ {
		for to := 0; to < len(visible); to++ {
			got := ReorderVisible(full, visible, from, to)
			require.Len(t, got, len(full))
			seen := make(map[int64]bool)
			for _, task := range got {
				require.False(t, seen[task.ID])
				seen[task.ID] = true
			}
			// Hidden tasks keep their slots.
			assert.Equal(t, int64(2), got[1].ID)
			assert.Equal(t, int64(4), got[3].ID)
		}
	}
}

func TestIndexByID(t *testing.T) {
	full := seq(5, 6, 7)
	assert.Equal(t, 1, IndexByID(full, 6))
	assert.Equal(t, -1, IndexByID(full, 42))
}
