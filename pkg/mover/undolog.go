package mover

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mbeckers/vidsort/pkg/models"
)

// DefaultLogName is the well-known undo log filename, resolved against the
// working directory. Exactly one log exists at a time; each logging batch
// overwrites it wholesale and a successful undo deletes it.
const DefaultLogName = "vidsort_last_run.json"

// DefaultLogPath returns the undo log path in the working directory
func DefaultLogPath() string {
	return DefaultLogName
}

// UndoLog is the persisted record of the most recent move batch
type UndoLog struct {
	// Timestamp is the batch completion time, RFC 3339 UTC
	Timestamp string `json:"timestamp"`

	// BatchID identifies the batch that wrote this log
	BatchID string `json:"batch_id,omitempty"`

	// Moved lists every move that actually happened, in execution order
	Moved []models.MoveRecord `json:"moved"`
}

// writeUndoLog persists the log atomically: the document is written to a
// temp file in the same directory and renamed over any prior log.
func writeUndoLog(path string, log *UndoLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal undo log: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp log file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write undo log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp log file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace undo log: %w", err)
	}
	return nil
}

// readUndoLog loads and decodes the log at path
func readUndoLog(path string) (*UndoLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read undo log: %w", err)
	}

	var log UndoLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("malformed undo log: %w", err)
	}
	return &log, nil
}
