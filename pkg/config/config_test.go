package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, Duration(DefaultHTTPTimeout), c.Settings.HTTPTimeout)
	assert.Equal(t, DefaultUserAgent, c.Settings.UserAgent)
	assert.Equal(t, "info", c.Settings.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfigFromReader(t *testing.T) {
	yaml := `
settings:
  cache_dir: /srv/binstash-cache
  http_timeout: 10s
  log_level: debug
`
	c, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, "/srv/binstash-cache", c.Settings.CacheDir)
	assert.Equal(t, Duration(10*time.Second), c.Settings.HTTPTimeout)
	assert.Equal(t, "debug", c.Settings.LogLevel)
	// Unset values fall back to defaults.
	assert.Equal(t, DefaultUserAgent, c.Settings.UserAgent)
}

func TestLoadConfigFromReader_InvalidYAML(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings: ["))
	assert.Error(t, err)
}

func TestLoadConfigFromReader_InvalidLogLevel(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings:\n  log_level: loud\n"))
	assert.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	original := DefaultConfig()
	original.Settings.CacheDir = "/tmp/custom"
	require.NoError(t, original.SaveConfig(path))

	// No temp file left behind.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original, reloaded)
}
