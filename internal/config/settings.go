package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
)

// Version tags the persisted record. A stored record with another version
// is not read.
const Version = 1

// KeyConfig is the preferences key holding the whole record. The record is
// written with a single preference write so a reader never sees half of it.
const KeyConfig = "config"

// ErrVersionMismatch is returned by Load when the stored record was written
// with a different Version.
var ErrVersionMismatch = errors.New("config version mismatch")

// ErrInvalidRecord is returned by Load when the stored record cannot be
// decoded.
var ErrInvalidRecord = errors.New("invalid config record")

// Config is the configuration that persists between application runs.
type Config struct {
	Version  int    `json:"version"`
	Username string `json:"username"`
}

// Default returns the configuration used when nothing valid is stored.
func Default() Config {
	return Config{Version: Version}
}

// Settings manages application configuration
type Settings struct {
	prefs fyne.Preferences
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{prefs: app.Preferences()}
}

// Load reads the stored configuration. A missing record yields Default.
// An undecodable record or a version mismatch returns Default together with
// ErrInvalidRecord or ErrVersionMismatch.
func (s *Settings) Load() (Config, error) {
	raw := s.prefs.String(KeyConfig)
	if raw == "" {
		return Default(), nil
	}

	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if cfg.Version != Version {
		return Default(), fmt.Errorf("%w: stored %d, want %d", ErrVersionMismatch, cfg.Version, Version)
	}
	return cfg, nil
}

// Save writes the configuration verbatim under the current Version.
func (s *Settings) Save(cfg Config) error {
	if cfg.Version != 0 && cfg.Version != Version {
		return fmt.Errorf("%w: cannot save version %d", ErrVersionMismatch, cfg.Version)
	}
	cfg.Version = Version

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	s.prefs.SetString(KeyConfig, string(raw))
	return nil
}

// Username returns the configured username, empty when unset
func (s *Settings) Username() string {
	cfg, err := s.Load()
	if err != nil {
		return ""
	}
	return cfg.Username
}

// SetUsername stores the username, keeping the rest of the record. An
// unreadable record is replaced.
func (s *Settings) SetUsername(name string) error {
	cfg, _ := s.Load()
	cfg.Username = name
	return s.Save(cfg)
}

// Reset removes the stored record
func (s *Settings) Reset() {
	s.prefs.RemoveValue(KeyConfig)
}

// Watch calls fn with a freshly loaded configuration whenever the
// preferences change.
func (s *Settings) Watch(fn func(Config, error)) {
	s.prefs.AddChangeListener(func() {
		fn(s.Load())
	})
}
