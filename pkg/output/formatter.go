package output

import (
	"github.com/mbeckers/vidsort/pkg/models"
)

// Formatter defines the interface for rendering plans and batch results.
// Implementations include human-readable, JSON, and progress-bar output.
type Formatter interface {
	// PlanPreview renders a planned batch without executing it
	PlanPreview(ops []models.PlannedOperation) error

	// MoveComplete renders the results of an executed batch
	MoveComplete(report *models.MoveReport) error

	// UndoComplete renders the results of an undo run
	UndoComplete(report *models.UndoReport) error

	// Error reports an error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
