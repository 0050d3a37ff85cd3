package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbeckers/vidsort/pkg/config"
	"github.com/mbeckers/vidsort/pkg/scan"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify vidsort configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			videoExts := cfg.Extensions.Video
			if len(videoExts) == 0 {
				videoExts = scan.DefaultVideoExtensions().List()
			}
			companionExts := cfg.Extensions.Companion
			if len(companionExts) == 0 {
				companionExts = scan.DefaultCompanionExtensions().List()
			}

			fmt.Printf("Move Companion Files: %t\n", cfg.Organize.MoveCompanionFiles)
			fmt.Printf("Season Subfolders: %t\n", cfg.Organize.CreateSeasonSubfolders)
			fmt.Printf("Video Extensions: %s\n", strings.Join(videoExts, " "))
			fmt.Printf("Companion Extensions: %s\n", strings.Join(companionExts, " "))
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
