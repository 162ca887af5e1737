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
	assert.Equal(t, ".friscc-cache", cfg.CacheDir)
	assert.Equal(t, 200*time.Millisecond, cfg.WatchDebounce)
	assert.True(t, cfg.Color)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "friscc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cacheDir: mycache\nwatchDebounce: 500ms\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mycache", cfg.CacheDir)
	assert.Equal(t, 500*time.Millisecond, cfg.WatchDebounce)
	assert.False(t, cfg.Color)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "friscc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cacheDir": "jsoncache", "watchDebounce": "1s"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jsoncache", cfg.CacheDir)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "friscc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notAField: true\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "friscc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watchDebounce: not-a-duration\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/friscc.yaml")
	assert.Error(t, err)
}

func TestResolvePathJoinsRelativeToConfigDir(t *testing.T) {
	cfg := &Config{CacheDir: "cache"}
	cfg.ResolvePath("/etc/friscc/friscc.yaml")
	assert.Equal(t, filepath.Join("/etc/friscc", "cache"), cfg.CacheDir)
}

func TestResolvePathLeavesAbsoluteUnchanged(t *testing.T) {
	cfg := &Config{CacheDir: "/abs/cache"}
	cfg.ResolvePath("/etc/friscc/friscc.yaml")
	assert.Equal(t, "/abs/cache", cfg.CacheDir)
}
