package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mbeckers/vidsort/pkg/models"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	okColor      = color.New(color.FgGreen).SprintFunc()
	errColor     = color.New(color.FgRed).SprintFunc()
	dimColor     = color.New(color.Faint).SprintFunc()
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer io.Writer
}

// NewHumanFormatter creates a human-readable formatter writing to w
// (nil = stdout)
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &HumanFormatter{writer: w}
}

// PlanPreview renders the planned operations
func (f *HumanFormatter) PlanPreview(ops []models.PlannedOperation) error {
	if len(ops) == 0 {
		fmt.Fprintln(f.writer, "Nothing to move (no matching files or already organized).")
		return nil
	}

	fmt.Fprintln(f.writer, headingColor(fmt.Sprintf("Previewing %d operations:", len(ops))))
	for i, op := range ops {
		fmt.Fprintf(f.writer, "%d. %s\n   %s %s\n", i+1, op.OriginalFilename, dimColor("->"), op.DestinationPath)
	}
	return nil
}

// MoveComplete renders the batch results
func (f *HumanFormatter) MoveComplete(report *models.MoveReport) error {
	fmt.Fprintf(f.writer, "\nMove completed in %s: %d moved, %d errors\n",
		report.Duration().Round(time.Millisecond), len(report.Moved), len(report.Errors))

	for _, rec := range report.Moved {
		fmt.Fprintf(f.writer, "%s %s %s %s\n", okColor("✓"), rec.SourcePath, dimColor("->"), rec.FinalPath)
	}
	for _, e := range report.Errors {
		fmt.Fprintf(f.writer, "%s %s: %s\n", errColor("✗"), e.Op.SourcePath, e.Message)
	}

	if report.LogPath != "" {
		fmt.Fprintf(f.writer, "Undo log written to %s\n", report.LogPath)
	}
	if report.LogErr != nil {
		fmt.Fprintf(f.writer, "%s could not write undo log: %v (moves were performed)\n",
			errColor("warning:"), report.LogErr)
	}

	fmt.Fprintf(f.writer, "Status: %s\n", report.Status())
	return nil
}

// UndoComplete renders the undo results
func (f *HumanFormatter) UndoComplete(report *models.UndoReport) error {
	fmt.Fprintf(f.writer, "\nUndo completed: %d restored, %d errors\n",
		len(report.Restored), len(report.Errors))

	for _, r := range report.Restored {
		fmt.Fprintf(f.writer, "%s %s %s %s\n", okColor("✓"), r.From, dimColor("->"), r.To)
	}
	for _, e := range report.Errors {
		fmt.Fprintf(f.writer, "%s %s: %s\n", errColor("✗"), e.Path, e.Message)
	}

	if len(report.PrunedDirs) > 0 {
		fmt.Fprintf(f.writer, "Removed %d empty directories\n", len(report.PrunedDirs))
	}
	if report.Root != "" {
		fmt.Fprintf(f.writer, "Root folder: %s\n", report.Root)
	}

	fmt.Fprintf(f.writer, "Status: %s\n", report.Status())
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	fmt.Fprintf(f.writer, "%s %v\n", errColor("Error:"), err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}
