package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Preview planned moves without touching the filesystem",
		Long: `Scan the immediate contents of a folder, classify every media file,
and show the moves that organize would perform. Nothing is moved.`,
		RunE: runScan,
	}

	addScanFlags(cmd)

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
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
		// An unlistable folder means there is nothing to do, not a failure.
		ops = nil
	}

	return formatter.PlanPreview(ops)
}
