package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Currency = "EUR"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Period = "fortnightly"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("db_path: /tmp/journal.sqlite\nuser: trader-1\ncurrency: IDR\nperiod: weekly\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/journal.sqlite", cfg.DBPath)
	assert.Equal(t, "trader-1", cfg.User)
	assert.Equal(t, "IDR", cfg.Currency)
	assert.Equal(t, "weekly", cfg.Period)
}

func TestLoadJSONFallback(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"db_path": "./j.db", "currency": "USD", "period": "all"}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./j.db", cfg.DBPath)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.User = "trader-1"
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
