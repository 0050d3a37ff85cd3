package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbeckers/vidsort/pkg/classify"
	"github.com/mbeckers/vidsort/pkg/config"
	"github.com/mbeckers/vidsort/pkg/logging"
	"github.com/mbeckers/vidsort/pkg/models"
	"github.com/mbeckers/vidsort/pkg/output"
	"github.com/mbeckers/vidsort/pkg/scan"
)

// validateFolder checks that the target folder exists and is a directory
func validateFolder(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("folder does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to access folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags.
// Boolean flags only override when explicitly set.
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("companions") {
		cfg.Organize.MoveCompanionFiles = organizeFlags.Companions
	}
	if cmd.Flags().Changed("seasons") {
		cfg.Organize.CreateSeasonSubfolders = organizeFlags.Seasons
	}
	if organizeFlags.Output != "" {
		cfg.Output.Format = organizeFlags.Output
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
	if globalFlags.Verbose {
		cfg.Output.Progress = true
	}
}

// newPlanner builds the scan planner from configuration
func newPlanner(cfg *config.Config) *scan.Planner {
	classifier := classify.New(nil)

	var videoExts, companionExts scan.ExtensionSet
	if len(cfg.Extensions.Video) > 0 {
		videoExts = scan.NewExtensionSet(cfg.Extensions.Video...)
	}
	if len(cfg.Extensions.Companion) > 0 {
		companionExts = scan.NewExtensionSet(cfg.Extensions.Companion...)
	}

	return scan.NewPlanner(classifier, videoExts, companionExts)
}

// newFormatter builds the output formatter from configuration
func newFormatter(cfg *config.Config) output.Formatter {
	switch cfg.Output.Format {
	case "json":
		return output.NewJSONFormatter(nil)
	default:
		if cfg.Output.Progress {
			return output.NewProgressFormatter(nil)
		}
		return output.NewHumanFormatter(nil)
	}
}

// createLogger creates a logger from the logging flags and configuration
func createLogger(cfg *config.Config) (logging.Logger, error) {
	logFile := organizeFlags.LogFile
	logFormat := organizeFlags.LogFormat
	logLevel := organizeFlags.LogLevel

	if logFile == "" {
		logFile = cfg.Logging.File
		logFormat = cfg.Logging.Format
		logLevel = cfg.Logging.Level
	}
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	format := logging.FormatText
	if logFormat == "json" {
		format = logging.FormatJSON
	}

	return logging.NewFileLogger(logFile, format, logging.ParseLevel(logLevel))
}

// exitWithStatus terminates the process with the status exit code
func exitWithStatus(status models.BatchStatus) {
	os.Exit(status.ExitCode())
}
