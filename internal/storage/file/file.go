// Package file keeps the task list in a single JSON document, rewritten in
// full on every mutation. It mirrors the shape of a small embedded database:
// the ordered task array plus a last-assigned-id counter.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"clarity/internal/storage"
	"clarity/internal/task"
)

type document struct {
	Tasks      []task.Task `json:"tasks"`
	LastTaskID int64       `json:"last_task_id"`
}

type Store struct {
	mu   sync.Mutex
	path string
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(document{Tasks: []task.Task{}}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) read() (document, error) {
	var doc document
	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc, fmt.Errorf("could not read task file: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("could not decode task file: %w", err)
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) LoadAll(ctx context.Context) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

func (s *Store) SaveAll(ctx context.Context, tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Tasks = tasks
	return s.write(doc)
}

func (s *Store) Create(ctx context.Context, t task.Task) (task.Task, error) {
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return task.Task{}, err
	}
	doc.LastTaskID++
	t.ID = doc.LastTaskID
	t.Priority = t.Priority.Normalize()
	doc.Tasks = append(doc.Tasks, t)
	if err := s.write(doc); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, id int64, p storage.Patch) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return task.Task{}, err
	}
	for i, t := range doc.Tasks {
		if t.ID != id {
			continue
		}
		updated := p.Apply(t)
		if err := updated.Validate(); err != nil {
			return task.Task{}, err
		}
		doc.Tasks[i] = updated
		if err := s.write(doc); err != nil {
			return task.Task{}, err
		}
		return updated, nil
	}
	return task.Task{}, storage.ErrNotFound
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	kept := doc.Tasks[:0]
	for _, t := range doc.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(doc.Tasks) {
		return nil
	}
	doc.Tasks = kept
	return s.write(doc)
}

func (s *Store) Close() error { return nil }
