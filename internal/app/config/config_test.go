package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "http://localhost:11434", cfg.Backend.URL)
	assert.Equal(t, "gpt-oss:120b-cloud", cfg.Backend.Model)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Backend.PingTimeout)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.SweepInterval)
	assert.Equal(t, 15, cfg.Scheduler.LeadMinutes)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
language: it
db_path: /tmp/custom.db
backend:
  url: http://model-host:11434
  model: llama3.1
scheduler:
  sweep_interval: 10s
  lead_minutes: 5
log_level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "it", cfg.Language)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "http://model-host:11434", cfg.Backend.URL)
	assert.Equal(t, "llama3.1", cfg.Backend.Model)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.SweepInterval)
	assert.Equal(t, 5*time.Minute, cfg.Lead())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: it\n"), 0644))

	t.Setenv("SCRIVO_LANGUAGE", "en")
	t.Setenv("SCRIVO_BACKEND_MODEL", "qwen2.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "qwen2.5", cfg.Backend.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveDBPath(t *testing.T) {
	cfg := Config{DBPath: "/data/scrivo.db"}
	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/scrivo.db", path)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err = Config{}.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".scrivo", "scrivo.db"), path)
}
