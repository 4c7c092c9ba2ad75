package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabprince/HebrewFamilyTree/internal/config"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	return cfg
}

func TestValidateDefaults(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validConfig().Validate())
}

func TestValidateBadServerMode(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Server.Mode = "production"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestValidateDriveNeedsCredentials(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Drive.FileID = "1ZPt2FeXPueje3P6WqXfs"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drive.credentials_file")
}

func TestValidateBadLanguage(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Notify.Language = "fr"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notify.language")
}

func TestValidateBadDefaultGender(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Notify.DefaultGender = "X"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notify.default_gender")
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	assert.Equal(t, config.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "tree.ged", cfg.Gedcom.InputFile)
	assert.Equal(t, "fixed_tree.ged", cfg.Gedcom.FixedFile)
	assert.Equal(t, "https://www.hebcal.com", cfg.Hebcal.BaseURL)
	assert.Equal(t, "Asia/Jerusalem", cfg.Hebcal.TimezoneID)
	assert.Equal(t, 6, cfg.Notify.DistanceThreshold)
	assert.Equal(t, 7, cfg.Notify.WindowDays)
	assert.Equal(t, "he", cfg.Notify.Language)
	assert.Equal(t, "M", cfg.Notify.DefaultGender)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	cfg.Notify.WindowDays = 14
	cfg.Notify.Language = "en"
	config.ApplyDefaults(cfg)

	assert.Equal(t, 14, cfg.Notify.WindowDays)
	assert.Equal(t, "en", cfg.Notify.Language)
}
