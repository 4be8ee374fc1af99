package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfulz/phonebook/internal/configloader"
)

// isolate keeps the user's real config out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(configloader.EnvConfig, "")
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.True(t, cfg.Logger.ToStderr)
	assert.Equal(t, "Enter a command: ", cfg.Session.Prompt)
	assert.Equal(t, "Welcome to the assistant bot!", cfg.Session.Greeting)
	assert.False(t, cfg.Contacts.StrictAdd)
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
log:
  level: debug
  to_file: true
  file: /tmp/phonebook.log
session:
  prompt: "> "
  greeting: ""
contacts:
  strict_add: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.ToFile)
	assert.Equal(t, "/tmp/phonebook.log", cfg.Logger.FilePath)
	assert.Equal(t, 10, cfg.Logger.MaxSizeMB)
	assert.Equal(t, "> ", cfg.Session.Prompt)
	assert.Equal(t, "", cfg.Session.Greeting)
	assert.True(t, cfg.Contacts.StrictAdd)
}

func TestLoad_ResolvedFromEnvPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("session:\n  prompt: \"$ \"\n"), 0o644))
	t.Setenv(configloader.EnvConfig, path)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Session.Prompt)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("PHONEBOOK_LOG_LEVEL", "error")
	t.Setenv("PHONEBOOK_CONTACTS_STRICT_ADD", "true")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logger.Level)
	assert.True(t, cfg.Contacts.StrictAdd)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error loading config")
}
