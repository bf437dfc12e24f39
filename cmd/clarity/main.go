package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pkgz/lgr"

	"clarity/internal/config"
	"clarity/internal/session"
	"clarity/internal/storage"
	"clarity/internal/storage/file"
	"clarity/internal/storage/memory"
	"clarity/internal/storage/rest"
	"clarity/internal/storage/sqlite"
	"clarity/internal/task"
	"clarity/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(filepath.Dir(configPath))
	defer closeLog()

	store, err := openStore(cfg)
	if err != nil {
		fmt.Printf("failed to open task store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.SeedDemo {
		seedDemo(store, logger)
	}

	sessions := session.NewProvider(configPath)

	logger.Logf("[INFO] starting with %s backend", cfg.Backend)
	if err := ui.Run(store, cfg, logger, sessions); err != nil {
		logger.Logf("[ERROR] program exited: %v", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		return sqlite.Open(cfg.DBPath)
	case config.BackendFile:
		return file.Open(cfg.TasksPath)
	case config.BackendAPI:
		if cfg.API.BaseURL == "" {
			return nil, fmt.Errorf("backend %q requires api.base_url", cfg.Backend)
		}
		return rest.New(cfg.API.BaseURL, cfg.API.Token), nil
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// newLogger writes to clarity.log next to the config; the terminal belongs
// to the UI.
func newLogger(dir string) (lgr.L, func()) {
	f, err := os.OpenFile(filepath.Join(dir, "clarity.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return lgr.New(lgr.Msec, lgr.Out(io.Discard), lgr.Err(io.Discard)), func() {}
	}
	return lgr.New(lgr.Msec, lgr.Out(f), lgr.Err(f)), func() { f.Close() }
}

// seedDemo puts one example task into a fresh, empty store.
func seedDemo(store storage.Store, logger lgr.L) {
	ctx := context.Background()
	tasks, err := store.LoadAll(ctx)
	if err != nil || len(tasks) > 0 {
		return
	}
	due, _ := task.ParseDate("2025-07-20")
	demo := task.New("Complete project", "Finish the task manager app", due, task.PriorityMedium)
	if _, err := store.Create(ctx, demo); err != nil {
		logger.Logf("[WARN] could not seed demo task: %v", err)
	}
}
