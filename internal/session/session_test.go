package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingProfileIsNewUser(t *testing.T) {
	pr := NewProvider(filepath.Join(t.TempDir(), "config.toml"))

	p, err := pr.Load()
	require.NoError(t, err)
	assert.True(t, p.IsNewUser())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	pr := NewProvider(filepath.Join(t.TempDir(), "config.toml"))

	saved := Profile{Username: "Riley", Usage: "myself", OnboardingDone: true}
	require.NoError(t, pr.Save(saved))

	loaded, err := pr.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
	assert.False(t, loaded.IsNewUser())
}
