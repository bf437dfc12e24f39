// Package memory holds tasks in process memory. It backs tests and the demo
// mode; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"clarity/internal/storage"
	"clarity/internal/task"
)

type Store struct {
	mu     sync.Mutex
	tasks  []task.Task
	lastID int64

	// SaveErr, when set, makes mutating calls fail. Tests use it to exercise
	// the logged-but-not-rolled-back write path.
	SaveErr error
}

func New(seed ...task.Task) *Store {
	s := &Store{}
	for _, t := range seed {
		s.lastID++
		t.ID = s.lastID
		s.tasks = append(s.tasks, t)
	}
	return s
}

func (s *Store) LoadAll(ctx context.Context) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *Store) SaveAll(ctx context.Context, tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.tasks = make([]task.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}

func (s *Store) Create(ctx context.Context, t task.Task) (task.Task, error) {
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return task.Task{}, s.SaveErr
	}
	s.lastID++
	t.ID = s.lastID
	t.Priority = t.Priority.Normalize()
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *Store) Update(ctx context.Context, id int64, p storage.Patch) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return task.Task{}, s.SaveErr
	}
	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		updated := p.Apply(t)
		if err := updated.Validate(); err != nil {
			return task.Task{}, err
		}
		s.tasks[i] = updated
		return updated, nil
	}
	return task.Task{}, storage.ErrNotFound
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) Close() error { return nil }
