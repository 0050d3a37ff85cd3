package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeckers/vidsort/pkg/mover"
)

// NewUndoCommand creates the undo command
func NewUndoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the last organize batch",
		Long: `Read the undo log written by the last organize run, move every file
back to where it came from, and remove the now-empty directories that run
created. The undo log is deleted afterwards.`,
		RunE: runUndo,
	}

	cmd.Flags().StringVarP(&organizeFlags.Output, "output", "o", "", "output format: human, json")
	addLoggingFlags(cmd)

	return cmd
}

func runUndo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg)

	formatter := newFormatter(cfg)

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	undoer := mover.NewUndoer(cfg.Organize.UndoLogPath, logger)
	report, err := undoer.UndoLast(ctx)
	if errors.Is(err, mover.ErrNoUndoLog) {
		// A normal negative result: there is simply nothing to undo.
		fmt.Println("No undo log found.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := formatter.UndoComplete(report); err != nil {
		return err
	}

	exitWithStatus(report.Status())
	return nil
}
