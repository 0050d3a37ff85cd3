// Package config loads and persists the application configuration.
// Values from the config file are overridden by command-line flags.
package config

import (
	"github.com/mbeckers/vidsort/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Organize   OrganizeConfig   `yaml:"organize"`
	Extensions ExtensionsConfig `yaml:"extensions"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// OrganizeConfig holds scan and move defaults
type OrganizeConfig struct {
	// MoveCompanionFiles moves subtitles/archives with their video
	MoveCompanionFiles bool `yaml:"move_companion_files"`

	// CreateSeasonSubfolders nests episodes under "Season NN" folders
	CreateSeasonSubfolders bool `yaml:"create_season_subfolders"`

	// UndoLogPath overrides the undo log location (empty = working dir)
	UndoLogPath string `yaml:"undo_log_path"`
}

// ExtensionsConfig optionally replaces the built-in extension sets.
// Empty lists keep the defaults.
type ExtensionsConfig struct {
	Video     []string `yaml:"video"`
	Companion []string `yaml:"companion"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar during moves
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "text" or "json"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = logging disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Organize: OrganizeConfig{
			MoveCompanionFiles:     false,
			CreateSeasonSubfolders: true,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

// Options builds the per-invocation engine options from the configuration
func (c *Config) Options() models.Options {
	return models.Options{
		MoveCompanionFiles:     c.Organize.MoveCompanionFiles,
		CreateSeasonSubfolders: c.Organize.CreateSeasonSubfolders,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'text' or 'json'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
