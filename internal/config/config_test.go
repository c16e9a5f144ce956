package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.Store.BaseURL)
	assert.Equal(t, "shopping-list", cfg.Store.Collection)
	assert.Equal(t, 10, cfg.Store.TimeoutSeconds)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.File)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GROCLI_STORE_BASE_URL", "https://store.example.test")
	t.Setenv("GROCLI_UI_THEME", "mono")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://store.example.test", cfg.Store.BaseURL)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, "shopping-list", cfg.Store.Collection, "untouched keys keep defaults")
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "grocli")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	yaml := "store:\n  base_url: https://file.example.test\n  timeout_seconds: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.test", cfg.Store.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout())
}

func TestWriteDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := WriteDefault()
	require.NoError(t, err)
	assert.FileExists(t, p)

	// Refuses to clobber an existing file.
	_, err = WriteDefault()
	assert.Error(t, err)

	// The generated file loads back to the defaults.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
