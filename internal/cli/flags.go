package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/vidsort/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}

// OrganizeFlags holds scan/organize command flags
type OrganizeFlags struct {
	Folder     string
	Companions bool
	Seasons    bool
	Output     string
	NoLog      bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var organizeFlags OrganizeFlags

// addScanFlags adds the flags shared by the scan and organize commands
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&organizeFlags.Folder, "folder", "f", "", "folder containing the video files (required)")
	cmd.MarkFlagRequired("folder")

	cmd.Flags().BoolVar(&organizeFlags.Companions, "companions", false, "move archives and subtitles with their matching video")
	cmd.Flags().BoolVar(&organizeFlags.Seasons, "seasons", true, "create season subfolders for series")
	cmd.Flags().StringVarP(&organizeFlags.Output, "output", "o", "", "output format: human, json")
}

// addLoggingFlags adds the flags controlling the engine log file
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&organizeFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&organizeFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&organizeFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}
