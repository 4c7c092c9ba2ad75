package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  mode: debug
notify:
  person_id: "@I42@"
  distance_threshold: 3
  language: en
gedcom:
  input_file: family.ged
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "@I42@", cfg.Notify.PersonID)
	assert.Equal(t, 3, cfg.Notify.DistanceThreshold)
	assert.Equal(t, "en", cfg.Notify.Language)
	assert.Equal(t, "family.ged", cfg.Gedcom.InputFile)
	// Untouched sections still get defaults.
	assert.Equal(t, config.DefaultWindowDays, cfg.Notify.WindowDays)
	assert.Equal(t, config.DefaultHebcalBaseURL, cfg.Hebcal.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `
notify:
  language: fr
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FAMTREE_NOTIFY_PERSON_ID", "@I7@")
	t.Setenv("FAMTREE_SERVER_PORT", "8888")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "@I7@", cfg.Notify.PersonID)
	assert.Equal(t, 8888, cfg.Server.Port)
}
