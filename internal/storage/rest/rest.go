// Package rest talks to the task API over HTTP. The server keeps the
// sequence order in an integer order field; SaveAll pushes the full id order
// in one request.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clarity/internal/storage"
	"clarity/internal/task"
)

type Store struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Store {
	return &Store{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// wireTask is the server's task representation.
type wireTask struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	Order       int    `json:"order"`
}

func toWire(t task.Task, order int) wireTask {
	return wireTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     task.FormatDate(t.Due),
		Priority:    int(t.Priority.Normalize()),
		Order:       order,
	}
}

func fromWire(w wireTask) task.Task {
	due, err := task.ParseDate(w.DueDate)
	if err != nil {
		// Older records carry full datetimes; keep the calendar day.
		if parsed, perr := time.Parse(time.RFC3339, w.DueDate); perr == nil {
			due = parsed
		} else if parsed, perr := time.Parse("2006-01-02T15:04:05", w.DueDate); perr == nil {
			due = parsed
		}
	}
	return task.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Completed:   w.Completed,
		Due:         due,
		Priority:    task.Priority(w.Priority).Normalize(),
	}
}

func (s *Store) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return storage.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (s *Store) LoadAll(ctx context.Context) ([]task.Task, error) {
	var wire []wireTask
	if err := s.do(ctx, http.MethodGet, "/api/tasks/", nil, &wire); err != nil {
		return nil, err
	}
	tasks := make([]task.Task, len(wire))
	for i, w := range wire {
		tasks[i] = fromWire(w)
	}
	return tasks, nil
}

func (s *Store) SaveAll(ctx context.Context, tasks []task.Task) error {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	payload := struct {
		Order []int64 `json:"order"`
	}{Order: ids}
	return s.do(ctx, http.MethodPut, "/api/tasks/reorder/", payload, nil)
}

func (s *Store) Create(ctx context.Context, t task.Task) (task.Task, error) {
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	var created wireTask
	if err := s.do(ctx, http.MethodPost, "/api/tasks/", toWire(t, 0), &created); err != nil {
		return task.Task{}, err
	}
	return fromWire(created), nil
}

func (s *Store) Update(ctx context.Context, id int64, p storage.Patch) (task.Task, error) {
	fields := map[string]any{}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return task.Task{}, task.ErrEmptyTitle
		}
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.ClearDue {
		fields["due_date"] = nil
	} else if p.Due != nil {
		fields["due_date"] = task.FormatDate(*p.Due)
	}
	if p.Priority != nil {
		fields["priority"] = int(p.Priority.Normalize())
	}
	if p.Completed != nil {
		fields["completed"] = *p.Completed
	}

	var updated wireTask
	path := fmt.Sprintf("/api/tasks/%d/", id)
	if err := s.do(ctx, http.MethodPatch, path, fields, &updated); err != nil {
		return task.Task{}, err
	}
	return fromWire(updated), nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	err := s.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d/", id), nil, nil)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Store) Close() error { return nil }
