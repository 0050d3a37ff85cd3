// Package mover executes planned move operations with collision avoidance
// and records a reversible undo log for the most recent batch.
package mover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbeckers/vidsort/pkg/logging"
	"github.com/mbeckers/vidsort/pkg/models"
)

// Observer is notified after each operation completes. Exactly one of rec
// and moveErr is non-nil.
type Observer func(rec *models.MoveRecord, moveErr *models.MoveError)

// Executor applies planned operations in list order. A single failure never
// aborts the batch; errors are collected alongside successes.
type Executor struct {
	logPath  string
	logger   logging.Logger
	observer Observer
}

// NewExecutor creates an executor persisting its undo log at logPath.
// An empty logPath selects the default log location; a nil logger discards
// log output.
func NewExecutor(logPath string, logger logging.Logger) *Executor {
	if logPath == "" {
		logPath = DefaultLogPath()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Executor{logPath: logPath, logger: logger}
}

// SetObserver registers a per-operation callback (progress reporting)
func (e *Executor) SetObserver(fn Observer) {
	e.observer = fn
}

// Execute performs the operations strictly in list order. When shouldLog is
// set and at least one move succeeded, a new undo log is persisted,
// atomically overwriting any prior log. A failed log write is carried on the
// report as a non-fatal condition; the moves already performed stand.
func (e *Executor) Execute(ctx context.Context, ops []models.PlannedOperation, shouldLog bool) *models.MoveReport {
	report := &models.MoveReport{
		BatchID:   uuid.New().String(),
		StartTime: time.Now(),
	}

	for _, op := range ops {
		rec, err := e.moveOne(op)
		if err != nil {
			moveErr := models.MoveError{Op: op, Message: err.Error()}
			report.Errors = append(report.Errors, moveErr)
			e.logger.Error(ctx, "move failed", err, logging.Fields{
				"src": op.SourcePath,
				"dst": op.DestinationPath,
			})
			e.notify(nil, &moveErr)
			continue
		}

		report.Moved = append(report.Moved, *rec)
		e.logger.Info(ctx, "moved file", logging.Fields{
			"src": rec.SourcePath,
			"dst": rec.FinalPath,
		})
		e.notify(rec, nil)
	}

	report.EndTime = time.Now()

	if shouldLog && len(report.Moved) > 0 {
		log := &UndoLog{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			BatchID:   report.BatchID,
			Moved:     report.Moved,
		}
		if err := writeUndoLog(e.logPath, log); err != nil {
			report.LogErr = err
			e.logger.Warn(ctx, "failed to write undo log", logging.Fields{
				"path":  e.logPath,
				"error": err.Error(),
			})
		} else {
			report.LogPath = e.logPath
		}
	}

	return report
}

func (e *Executor) moveOne(op models.PlannedOperation) (*models.MoveRecord, error) {
	if err := os.MkdirAll(op.DestinationFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination folder: %w", err)
	}

	dst := op.DestinationPath
	if pathExists(dst) {
		dst = UniquePath(dst)
	}

	// A cross-device rename fails here and surfaces as a per-item error;
	// the executor does not fall back to copy+delete.
	if err := os.Rename(op.SourcePath, dst); err != nil {
		return nil, err
	}

	return &models.MoveRecord{
		SourcePath:        op.SourcePath,
		DestinationFolder: op.DestinationFolder,
		FinalPath:         dst,
		OriginalFilename:  op.OriginalFilename,
	}, nil
}

func (e *Executor) notify(rec *models.MoveRecord, moveErr *models.MoveError) {
	if e.observer != nil {
		e.observer(rec, moveErr)
	}
}

// UniquePath resolves a filename collision by appending " (1)", " (2)", …
// before the extension until a path is found that does not exist at call
// time. The input is returned unchanged if it is already free.
func UniquePath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	candidate := path
	for counter := 1; pathExists(candidate); counter++ {
		candidate = fmt.Sprintf("%s (%d)%s", base, counter, ext)
	}
	return candidate
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
