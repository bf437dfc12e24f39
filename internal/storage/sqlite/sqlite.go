// Package sqlite is the default task store, a single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"clarity/internal/storage"
	"clarity/internal/task"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due TEXT DEFAULT NULL,
	priority INTEGER NOT NULL DEFAULT 4,
	completed INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}
	return s.ensureTaskColumns()
}

// ensureTaskColumns upgrades databases created before a column existed.
func (s *Store) ensureTaskColumns() error {
	required := map[string]string{
		"description": "ALTER TABLE tasks ADD COLUMN description TEXT NOT NULL DEFAULT '';",
		"priority":    "ALTER TABLE tasks ADD COLUMN priority INTEGER NOT NULL DEFAULT 4;",
		"position":    "ALTER TABLE tasks ADD COLUMN position INTEGER NOT NULL DEFAULT 0;",
	}
	existing := map[string]struct{}{}
	rows, err := s.db.Query(`PRAGMA table_info(tasks);`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		existing[name] = struct{}{}
	}
	for col, alter := range required {
		if _, ok := existing[col]; ok {
			continue
		}
		if _, err := s.db.Exec(alter); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *Store) LoadAll(ctx context.Context) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, due, priority, completed, created_at FROM tasks ORDER BY position, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var completed, priority int
		var dueStr sql.NullString
		var createdStr string

		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &dueStr, &priority, &completed, &createdStr); err != nil {
			return nil, err
		}
		t.Priority = task.Priority(priority).Normalize()
		t.Completed = completed == 1
		if dueStr.Valid {
			if parsed, err := time.Parse(time.RFC3339, dueStr.String); err == nil {
				t.Due = parsed
			}
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			t.CreatedAt = created
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveAll rewrites every task's position to its index in the given sequence.
func (s *Store) SaveAll(ctx context.Context, tasks []task.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, t := range tasks {
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET position = ? WHERE id = ?;`, i, t.ID); err != nil {
			return fmt.Errorf("could not save position of task %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func (s *Store) Create(ctx context.Context, t task.Task) (task.Task, error) {
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	t.Priority = t.Priority.Normalize()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, due, priority, completed, position, created_at)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM tasks), ?);`,
		t.Title, t.Description, nullDue(t.Due), int(t.Priority), boolInt(t.Completed),
		t.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return task.Task{}, fmt.Errorf("could not create task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, fmt.Errorf("could not get last insert id: %w", err)
	}
	t.ID = id
	return t, nil
}

func (s *Store) Update(ctx context.Context, id int64, p storage.Patch) (task.Task, error) {
	current, err := s.loadOne(ctx, id)
	if err != nil {
		return task.Task{}, err
	}
	updated := p.Apply(current)
	if err := updated.Validate(); err != nil {
		return task.Task{}, err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, due = ?, priority = ?, completed = ? WHERE id = ?;`,
		updated.Title, updated.Description, nullDue(updated.Due), int(updated.Priority),
		boolInt(updated.Completed), id)
	if err != nil {
		return task.Task{}, fmt.Errorf("could not update task: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	return err
}

func (s *Store) loadOne(ctx context.Context, id int64) (task.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, due, priority, completed, created_at FROM tasks WHERE id = ?;`, id)

	var t task.Task
	var completed, priority int
	var dueStr sql.NullString
	var createdStr string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &dueStr, &priority, &completed, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, storage.ErrNotFound
	}
	if err != nil {
		return task.Task{}, err
	}
	t.Priority = task.Priority(priority).Normalize()
	t.Completed = completed == 1
	if dueStr.Valid {
		if parsed, err := time.Parse(time.RFC3339, dueStr.String); err == nil {
			t.Due = parsed
		}
	}
	if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
		t.CreatedAt = created
	}
	return t, nil
}

func nullDue(due time.Time) sql.NullString {
	if due.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: due.UTC().Format(time.RFC3339), Valid: true}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
