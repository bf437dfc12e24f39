package task

// Move returns a copy of tasks with the element at from removed and
// reinserted at to. All other elements keep their relative order. Out-of-range
// indices and from == to return the input unchanged.
func Move(tasks []Task, from, to int) []Task {
	n := len(tasks)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return tasks
	}
	out := make([]Task, 0, n)
	out = append(out, tasks[:from]...)
	out = append(out, tasks[from+1:]...)
	moved := tasks[from]
	out = append(out[:to], append([]Task{moved}, out[to:]...)...)
	return out
}

// ReorderVisible applies a drag expressed in visible (filtered-view) indices
// to the full backing sequence. The slots that visible tasks occupy in the
// full sequence stay fixed as a set; the moved visible order is written back
// into those slots front to front. Tasks hidden by the active filter never
// change position, so reordering under a filter cannot corrupt their order.
//
// The result is always a permutation of full. Unknown ids in visible and
// out-of-range indices leave the sequence untouched.
func ReorderVisible(full, visible []Task, from, to int) []Task {
	if from < 0 || from >= len(visible) || to < 0 || to >= len(visible) || from == to {
		return full
	}

	moved := Move(visible, from, to)

	ids := make(map[int64]struct{}, len(moved))
	for _, t := range moved {
		ids[t.ID] = struct{}{}
	}

	slots := make([]int, 0, len(moved))
	for i, t := range full {
		if _, ok := ids[t.ID]; ok {
			slots = append(slots, i)
		}
	}
	if len(slots) != len(moved) {
		// The view is stale relative to the backing sequence; don't guess.
		return full
	}

	out := make([]Task, len(full))
	copy(out, full)
	for i, slot := range slots {
		out[slot] = moved[i]
	}
	return out
}

// IndexByID returns the position of id in tasks, or -1.
func IndexByID(tasks []Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
