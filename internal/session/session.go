// Package session keeps the local user profile. The task list itself never
// reads it; only the surrounding shell does, to decide whether to run the
// first-launch onboarding.
package session

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const profileFileName = "profile.toml"

type Profile struct {
	Username       string `toml:"username"`
	Usage          string `toml:"usage"` // "myself" or "team"
	OnboardingDone bool   `toml:"onboarding_done"`
}

func (p Profile) IsNewUser() bool { return !p.OnboardingDone }

// Provider loads and saves the profile next to the config file.
type Provider struct {
	path string
}

func NewProvider(configPath string) *Provider {
	return &Provider{path: filepath.Join(filepath.Dir(configPath), profileFileName)}
}

func (pr *Provider) Load() (Profile, error) {
	var p Profile
	data, err := os.ReadFile(pr.path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

func (pr *Provider) Save(p Profile) error {
	if err := os.MkdirAll(filepath.Dir(pr.path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(pr.path, data, 0o644)
}
