package ui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clarity/internal/session"
)

func newOnboardingModel(t *testing.T) (Model, *session.Provider) {
	t.Helper()
	sessions := session.NewProvider(filepath.Join(t.TempDir(), "config.toml"))
	m := New(seededStore(), testConfig(), testLogger(), sessions)
	return m, sessions
}

func TestFirstLaunchRunsOnboarding(t *testing.T) {
	m, sessions := newOnboardingModel(t)
	require.Equal(t, modeOnboarding, m.mode)
	assert.Contains(t, m.View(), "Welcome to Clarity")

	m = press(t, m, "enter")
	m = typeString(t, m, "Riley")
	m = press(t, m, "enter")
	assert.Contains(t, m.View(), "How do you plan to use Clarity?")

	m = press(t, m, "1")
	assert.Equal(t, modeList, m.mode)
	assert.Contains(t, m.status, "Riley")

	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "Riley", saved.Username)
	assert.Equal(t, "myself", saved.Usage)
	assert.False(t, saved.IsNewUser())
}

func TestOnboardingSkipStillCompletes(t *testing.T) {
	m, sessions := newOnboardingModel(t)

	m = press(t, m, "esc")
	assert.Equal(t, modeList, m.mode)

	saved, err := sessions.Load()
	require.NoError(t, err)
	assert.True(t, saved.OnboardingDone)
	assert.Empty(t, saved.Username)
}

func TestSecondLaunchSkipsOnboarding(t *testing.T) {
	sessions := session.NewProvider(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, sessions.Save(session.Profile{Username: "Riley", OnboardingDone: true}))

	m := New(seededStore(), testConfig(), testLogger(), sessions)
	assert.Equal(t, modeList, m.mode)
}
