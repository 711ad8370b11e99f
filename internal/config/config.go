// Package config holds the user's persisted preferences and the process
// environment.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/generation"
)

// Config holds the user's preferences, persisted to ~/.dryink/config.json.
type Config struct {
	WelcomeShown         bool   `json:"welcome_shown,omitempty"`         // Whether the welcome tour has been shown
	LastSeenVersion      string `json:"last_seen_version,omitempty"`     // Last version the user saw the changelog for
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a video is ready

	DefaultParams *generation.Params `json:"default_params,omitempty"`

	mu       sync.RWMutex
	filePath string
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dryink"), nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from ~/.dryink/config.json, or returns defaults if it
// doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.dryink/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. Save writes back to the same path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Must run before Validate, which only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills defaults left empty by the file. Only called from
// LoadFrom before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.DefaultParams == nil {
		p := generation.DefaultParams()
		c.DefaultParams = &p
	}
}

// Validate checks that stored values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.DefaultParams != nil {
		if err := c.DefaultParams.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := configPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.dryink/config.json", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Path returns the file the config is saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// HasSeenWelcome returns whether the welcome tour has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome tour as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetDefaultParams returns the generation settings new prompts start with.
func (c *Config) GetDefaultParams() generation.Params {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.DefaultParams == nil {
		return generation.DefaultParams()
	}
	return *c.DefaultParams
}

// SetDefaultParams stores p after validating it.
func (c *Config) SetDefaultParams(p generation.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultParams = &p
	return nil
}
