package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "admin", cfg.Display.AdminUser)
	assert.True(t, cfg.Notifications.SeedDefaults)
	assert.Len(t, cfg.Team, 3)
}

func TestLoadConfig_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  driver: file
  path: /tmp/slots
notifications:
  seed_defaults: false
team:
  - name: Linus Torvalds
    role: Kernel
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/slots", cfg.Storage.Path)
	assert.False(t, cfg.Notifications.SeedDefaults)
	assert.Equal(t, "admin", cfg.Display.AdminUser, "unset keys keep defaults")
	require.Len(t, cfg.Team, 1)
	assert.Equal(t, "Linus Torvalds", cfg.Team[0].Name)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: redis\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultAppConfig()
	cfg.Storage.Driver = "memory"
	cfg.Display.AdminUser = "root"
	require.NoError(t, SaveConfig(path, cfg))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", got.Storage.Driver)
	assert.Equal(t, "root", got.Display.AdminUser)
	assert.Len(t, got.Team, len(cfg.Team))
}

func TestTeamMember_Initials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"grace brewster hopper", "GB"},
		{"  turing", "T"},
		{"", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TeamMember{Name: tt.name}.Initials())
		})
	}
}
