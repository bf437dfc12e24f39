package task

import (
	"strings"
	"time"
)

// Filter derives the visible subset of tasks from a free-text query and an
// optional calendar day. It never mutates its input and keeps the relative
// order of tasks that pass. An empty query passes every task; a zero day
// disables the date predicate. Both predicates must hold.
func Filter(tasks []Task, query string, day time.Time) []Task {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesQuery(t, query) {
			continue
		}
		if !matchesDay(t, day) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t Task, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	return t.Description != "" && strings.Contains(strings.ToLower(t.Description), query)
}

// matchesDay is an exact calendar-day match. Tasks without a due date never
// match an active day filter, even when the query matches.
func matchesDay(t Task, day time.Time) bool {
	if day.IsZero() {
		return true
	}
	if t.Due.IsZero() {
		return false
	}
	y1, m1, d1 := t.Due.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
