package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "clarity.db"
	DefaultTasksFileName  = "tasks.json"

	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendAPI    = "api"
	BackendMemory = "memory"
)

type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Edit         string `toml:"edit"`
	Delete       string `toml:"delete"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Toggle       string `toml:"toggle"`
	Grab         string `toml:"grab"`
	MoveUp       string `toml:"move_up"`
	MoveDown     string `toml:"move_down"`
	Search       string `toml:"search"`
	DateFilter   string `toml:"date_filter"`
	ClearFilters string `toml:"clear_filters"`
	Confirm      string `toml:"confirm"`
	Cancel       string `toml:"cancel"`
}

type API struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

type Config struct {
	Backend   string `toml:"backend"`
	DBPath    string `toml:"db_path"`
	TasksPath string `toml:"tasks_path"`
	API       API    `toml:"api"`
	SeedDemo  bool   `toml:"seed_demo"`
	Keys      Keymap `toml:"keys"`
}

// ResolveConfigPath prefers the user config directory and falls back to the
// working directory when it cannot be determined.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "clarity", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	fillDefaults(&cfg, filepath.Dir(path))
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fillDefaults(cfg *Config, dir string) {
	if cfg.Backend == "" {
		cfg.Backend = BackendSQLite
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, DefaultDBName)
	}
	if cfg.TasksPath == "" {
		cfg.TasksPath = filepath.Join(dir, DefaultTasksFileName)
	}
	def := defaultKeymap()
	if cfg.Keys == (Keymap{}) {
		cfg.Keys = def
	}
}

func defaultConfig(dir string) Config {
	return Config{
		Backend:   BackendSQLite,
		DBPath:    filepath.Join(dir, DefaultDBName),
		TasksPath: filepath.Join(dir, DefaultTasksFileName),
		Keys:      defaultKeymap(),
	}
}

func defaultKeymap() Keymap {
	return Keymap{
		Quit:         "q",
		Add:          "a",
		Edit:         "e",
		Delete:       "d",
		Up:           "k",
		Down:         "j",
		Toggle:       " ",
		Grab:         "g",
		MoveUp:       "K",
		MoveDown:     "J",
		Search:       "/",
		DateFilter:   "f",
		ClearFilters: "c",
		Confirm:      "enter",
		Cancel:       "esc",
	}
}
