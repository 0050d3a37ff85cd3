package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeckers/vidsort/pkg/mover"
	"github.com/mbeckers/vidsort/pkg/output"
)

// NewOrganizeCommand creates the organize command
func NewOrganizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Classify and move the media files in a folder",
		Long: `Scan a folder, derive a destination layout from the filenames, and
perform the moves. Filename collisions get a numeric suffix. A successful run
writes an undo log so the batch can be reversed with "vidsort undo".`,
		RunE: runOrganize,
	}

	addScanFlags(cmd)
	addLoggingFlags(cmd)
	cmd.Flags().BoolVar(&organizeFlags.NoLog, "no-log", false, "do not write an undo log for this batch")

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateFolder(organizeFlags.Folder); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg)

	planner := newPlanner(cfg)
	formatter := newFormatter(cfg)

	ops, err := planner.Plan(organizeFlags.Folder, cfg.Options())
	if err != nil {
		ops = nil
	}
	if len(ops) == 0 {
		return formatter.PlanPreview(nil)
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	executor := mover.NewExecutor(cfg.Organize.UndoLogPath, logger)
	if progress, ok := formatter.(*output.ProgressFormatter); ok {
		progress.StartBatch(len(ops))
		executor.SetObserver(progress.Observe)
	}

	report := executor.Execute(ctx, ops, !organizeFlags.NoLog)

	if err := formatter.MoveComplete(report); err != nil {
		return err
	}

	exitWithStatus(report.Status())
	return nil
}
