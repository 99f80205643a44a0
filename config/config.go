package config

import (
	"breakpoint-indicator/breakpoint"
	"breakpoint-indicator/log"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ConfigFileName = "config.json"

	// configDirEnv overrides the config directory, mainly for tests.
	configDirEnv = "BPI_CONFIG_DIR"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".breakpoint-indicator"), nil
}

// Config represents the application configuration
type Config struct {
	// Candidates is the ordered list of breakpoint names and their badge colours.
	Candidates []breakpoint.Candidate `json:"candidates"`
	// Thresholds holds static thresholds keyed by breakpoint name. Values from
	// the environment and the stylesheet take precedence over these.
	Thresholds map[string]int `json:"thresholds"`
	// Stylesheet is a CSS file declaring --breakpoint-{name} on :root.
	Stylesheet string `json:"stylesheet"`
	// Watch reloads the stylesheet when it changes on disk.
	Watch bool `json:"watch"`
	// AlertColor is the badge colour for the open-ended ranges at either end.
	AlertColor string `json:"alert_color"`
	// Unit is the suffix shown after every width in the badge text.
	Unit string `json:"unit"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Candidates: breakpoint.DefaultCandidates(),
		// Terminal-sized defaults, one per default candidate.
		Thresholds: map[string]int{
			"min":          60,
			"small":        80,
			"small-medium": 100,
			"medium":       120,
			"large":        140,
			"max":          180,
		},
		AlertColor: breakpoint.DefaultAlertColor,
		Unit:       breakpoint.DefaultUnit,
	}
}

// Normalize fills in zero values left by a partial config file.
func (c *Config) Normalize() {
	if len(c.Candidates) == 0 {
		c.Candidates = breakpoint.DefaultCandidates()
	}
	if c.Thresholds == nil {
		c.Thresholds = map[string]int{}
	}
	if c.AlertColor == "" {
		c.AlertColor = breakpoint.DefaultAlertColor
	}
	if c.Unit == "" {
		c.Unit = breakpoint.DefaultUnit
	}
}

// Options converts the config into formatting options for a breakpoint set.
func (c *Config) Options() breakpoint.Options {
	return breakpoint.Options{
		AlertColor: c.AlertColor,
		Unit:       c.Unit,
	}
}

// LoadConfig loads the config from disk. If it cannot be done, the default
// config is returned.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file at %s: %v", configPath, err)

		// Keep the broken file around for the user to fix.
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	config.Normalize()
	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	lock := NewFileLock(configDir)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.WarningLog.Printf("%v", err)
		}
	}()

	// Write then rename so a concurrent LoadConfig never reads a partial file.
	tmp := configPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return os.Rename(tmp, configPath)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
