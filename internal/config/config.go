// Package config defines the configuration structures for the family tree
// notifier.  No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"

	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables for the serve command.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DriveConfig holds the Google Drive source of the GEDCOM export.  Both
// fields empty means the local input file is used as-is.
type DriveConfig struct {
	FileID          string `mapstructure:"file_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// GedcomConfig holds the GEDCOM file locations.
type GedcomConfig struct {
	// InputFile is the raw export, downloaded or local.
	InputFile string `mapstructure:"input_file"`
	// FixedFile is where the normalized copy is written before decoding.
	FixedFile string `mapstructure:"fixed_file"`
	// Watch enables rebuild-on-change of the in-memory records while serving.
	Watch bool `mapstructure:"watch"`
}

// HebcalConfig holds Hebcal API client settings.
type HebcalConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryMax   int           `mapstructure:"retry_max"`
	TimezoneID string        `mapstructure:"timezone_id"`
}

// NotifyConfig holds the weekly notification parameters.
type NotifyConfig struct {
	// PersonID is the reference person for distance and path annotations.
	// Empty disables them.
	PersonID string `mapstructure:"person_id"`
	// DistanceThreshold is the kinship distance above which the issue spells
	// out the relationship path.
	DistanceThreshold int `mapstructure:"distance_threshold"`
	// WindowDays is the length of the upcoming-events window.
	WindowDays int `mapstructure:"window_days"`
	// Language selects the report language, "he" or "en".
	Language string `mapstructure:"language"`
	// DefaultGender is assumed for individuals without a recorded gender
	// when classifying relationships, "M" or "F".
	DefaultGender string `mapstructure:"default_gender"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration object.
type Config struct {
	Server ServerConfig      `mapstructure:"server"`
	Log    logging.LogConfig `mapstructure:"log"`
	Drive  DriveConfig       `mapstructure:"drive"`
	Gedcom GedcomConfig      `mapstructure:"gedcom"`
	Hebcal HebcalConfig      `mapstructure:"hebcal"`
	Notify NotifyConfig      `mapstructure:"notify"`
}

// Validate checks cross-field consistency.  It assumes ApplyDefaults has
// already run, so empty defaulted fields indicate a broken load.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Gedcom.InputFile == "" {
		return fmt.Errorf("gedcom.input_file must not be empty")
	}
	if c.Gedcom.FixedFile == "" {
		return fmt.Errorf("gedcom.fixed_file must not be empty")
	}
	if c.Drive.FileID != "" && c.Drive.CredentialsFile == "" {
		return fmt.Errorf("drive.credentials_file is required when drive.file_id is set")
	}
	if c.Notify.WindowDays <= 0 {
		return fmt.Errorf("notify.window_days must be positive, got %d", c.Notify.WindowDays)
	}
	if c.Notify.DistanceThreshold < 0 {
		return fmt.Errorf("notify.distance_threshold must not be negative, got %d", c.Notify.DistanceThreshold)
	}
	switch c.Notify.Language {
	case "he", "en":
	default:
		return fmt.Errorf("notify.language must be he or en, got %q", c.Notify.Language)
	}
	switch c.Notify.DefaultGender {
	case "M", "F":
	default:
		return fmt.Errorf("notify.default_gender must be M or F, got %q", c.Notify.DefaultGender)
	}
	return nil
}
