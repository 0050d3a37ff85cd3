package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbeckers/vidsort/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "vidsort",
		Short: "Organize loosely-named media files into a clean folder layout",
		Long: `vidsort classifies movie and TV episode files by their filenames,
derives a destination folder layout, and performs the moves with collision
avoidance. Subtitles and archives can follow their matching video, and the
last batch of moves can be reversed with the undo command.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewScanCommand())
	rootCmd.AddCommand(cli.NewOrganizeCommand())
	rootCmd.AddCommand(cli.NewUndoCommand())
	rootCmd.AddCommand(cli.NewTitleCaseCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())

	return rootCmd.Execute()
}
