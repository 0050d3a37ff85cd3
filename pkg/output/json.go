package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/mbeckers/vidsort/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to w (nil = stdout)
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

// JSONPlanDoc is the document emitted for a plan preview
type JSONPlanDoc struct {
	Type       string                    `json:"type"`
	Operations []models.PlannedOperation `json:"operations"`
}

// JSONMoveDoc is the document emitted for an executed batch
type JSONMoveDoc struct {
	Type       string              `json:"type"`
	BatchID    string              `json:"batch_id"`
	Status     string              `json:"status"`
	DurationMs int64               `json:"duration_ms"`
	Moved      []models.MoveRecord `json:"moved"`
	Errors     []JSONMoveError     `json:"errors,omitempty"`
	LogPath    string              `json:"log_path,omitempty"`
	LogError   string              `json:"log_error,omitempty"`
}

// JSONMoveError represents a failed operation in JSON output
type JSONMoveError struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// JSONUndoDoc is the document emitted for an undo run
type JSONUndoDoc struct {
	Type     string                `json:"type"`
	Status   string                `json:"status"`
	Root     string                `json:"root,omitempty"`
	Restored []models.RestoredFile `json:"restored"`
	Errors   []JSONUndoError       `json:"errors,omitempty"`
	Pruned   []string              `json:"pruned_dirs,omitempty"`
}

// JSONUndoError represents a failed restoration in JSON output
type JSONUndoError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// PlanPreview emits the planned operations as JSON
func (f *JSONFormatter) PlanPreview(ops []models.PlannedOperation) error {
	if ops == nil {
		ops = []models.PlannedOperation{}
	}
	return f.emit(JSONPlanDoc{Type: "plan", Operations: ops})
}

// MoveComplete emits the batch results as JSON
func (f *JSONFormatter) MoveComplete(report *models.MoveReport) error {
	doc := JSONMoveDoc{
		Type:       "move_report",
		BatchID:    report.BatchID,
		Status:     string(report.Status()),
		DurationMs: report.Duration().Milliseconds(),
		Moved:      report.Moved,
		LogPath:    report.LogPath,
	}
	if doc.Moved == nil {
		doc.Moved = []models.MoveRecord{}
	}
	for _, e := range report.Errors {
		doc.Errors = append(doc.Errors, JSONMoveError{Source: e.Op.SourcePath, Error: e.Message})
	}
	if report.LogErr != nil {
		doc.LogError = report.LogErr.Error()
	}
	return f.emit(doc)
}

// UndoComplete emits the undo results as JSON
func (f *JSONFormatter) UndoComplete(report *models.UndoReport) error {
	doc := JSONUndoDoc{
		Type:     "undo_report",
		Status:   string(report.Status()),
		Root:     report.Root,
		Restored: report.Restored,
		Pruned:   report.PrunedDirs,
	}
	if doc.Restored == nil {
		doc.Restored = []models.RestoredFile{}
	}
	for _, e := range report.Errors {
		doc.Errors = append(doc.Errors, JSONUndoError{Path: e.Path, Error: e.Message})
	}
	return f.emit(doc)
}

// Error emits an error document
func (f *JSONFormatter) Error(err error) error {
	return f.emit(map[string]string{
		"type":      "error",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"error":     err.Error(),
	})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) emit(doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.writer.Write(data)
	return err
}
