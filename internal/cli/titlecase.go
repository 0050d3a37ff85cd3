package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbeckers/vidsort/pkg/mover"
)

// NewTitleCaseCommand creates the titlecase command
func NewTitleCaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titlecase",
		Short: "Rename immediate subfolders to Title Case",
		Long: `Rename every immediate subfolder of the given folder to Title Case,
best-effort. Folders whose title-cased name clashes with an existing entry
are skipped and reported.`,
		RunE: runTitleCase,
	}

	cmd.Flags().StringVarP(&organizeFlags.Folder, "folder", "f", "", "folder whose subfolders to rename (required)")
	cmd.MarkFlagRequired("folder")

	return cmd
}

func runTitleCase(cmd *cobra.Command, args []string) error {
	if err := validateFolder(organizeFlags.Folder); err != nil {
		return err
	}

	renamed, renameErrs, err := mover.TitleCaseFolders(organizeFlags.Folder)
	if err != nil {
		return fmt.Errorf("failed to list folder: %w", err)
	}

	for _, r := range renamed {
		fmt.Printf("Renamed: %s -> %s\n", r.OldName, r.NewName)
	}
	for _, e := range renameErrs {
		fmt.Printf("Error: %s (%s)\n", e.Name, e.Message)
	}
	fmt.Printf("Completed. %d renamed, %d errors.\n", len(renamed), len(renameErrs))

	return nil
}
