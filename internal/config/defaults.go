package config

import "time"

// Default value constants.
const (
	DefaultServerPort = 8080
	DefaultServerMode = "release"

	DefaultGedcomInputFile = "tree.ged"
	DefaultGedcomFixedFile = "fixed_tree.ged"

	DefaultHebcalBaseURL  = "https://www.hebcal.com"
	DefaultHebcalTimeout  = 10 * time.Second
	DefaultHebcalRetryMax = 3
	DefaultTimezoneID     = "Asia/Jerusalem"

	DefaultDistanceThreshold = 6
	DefaultWindowDays        = 7
	DefaultLanguage          = "he"
	DefaultGender            = "M"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with its default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
	if len(cfg.Log.ErrorOutputPaths) == 0 {
		cfg.Log.ErrorOutputPaths = []string{"stderr"}
	}

	if cfg.Gedcom.InputFile == "" {
		cfg.Gedcom.InputFile = DefaultGedcomInputFile
	}
	if cfg.Gedcom.FixedFile == "" {
		cfg.Gedcom.FixedFile = DefaultGedcomFixedFile
	}

	if cfg.Hebcal.BaseURL == "" {
		cfg.Hebcal.BaseURL = DefaultHebcalBaseURL
	}
	if cfg.Hebcal.Timeout == 0 {
		cfg.Hebcal.Timeout = DefaultHebcalTimeout
	}
	if cfg.Hebcal.RetryMax == 0 {
		cfg.Hebcal.RetryMax = DefaultHebcalRetryMax
	}
	if cfg.Hebcal.TimezoneID == "" {
		cfg.Hebcal.TimezoneID = DefaultTimezoneID
	}

	if cfg.Notify.DistanceThreshold == 0 {
		cfg.Notify.DistanceThreshold = DefaultDistanceThreshold
	}
	if cfg.Notify.WindowDays == 0 {
		cfg.Notify.WindowDays = DefaultWindowDays
	}
	if cfg.Notify.Language == "" {
		cfg.Notify.Language = DefaultLanguage
	}
	if cfg.Notify.DefaultGender == "" {
		cfg.Notify.DefaultGender = DefaultGender
	}
}
