package models

import (
	"time"
)

// BatchStatus represents the overall result of a move or undo batch
type BatchStatus string

const (
	// StatusSuccess indicates all operations completed successfully
	StatusSuccess BatchStatus = "success"
	// StatusPartial indicates some operations failed
	StatusPartial BatchStatus = "partial"
	// StatusFailed indicates no operation succeeded
	StatusFailed BatchStatus = "failed"
	// StatusNothingToDo indicates the batch was empty
	StatusNothingToDo BatchStatus = "nothing-to-do"
)

// ExitCode returns the appropriate process exit code for the status
func (s BatchStatus) ExitCode() int {
	switch s {
	case StatusSuccess, StatusNothingToDo:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}

// MoveReport represents the results of executing a batch of planned moves
type MoveReport struct {
	// BatchID identifies the batch; also recorded in the undo log
	BatchID string

	// Timing
	StartTime time.Time
	EndTime   time.Time

	// Moved lists the operations that succeeded, with their final paths
	Moved []MoveRecord

	// Errors lists the operations that failed; failures never abort the batch
	Errors []MoveError

	// LogPath is where the undo log was written, if logging was requested
	LogPath string

	// LogErr carries a failed undo-log write. The moves already performed
	// stand regardless; this is a non-fatal condition.
	LogErr error
}

// Status derives the overall batch status
func (r *MoveReport) Status() BatchStatus {
	switch {
	case len(r.Moved) == 0 && len(r.Errors) == 0:
		return StatusNothingToDo
	case len(r.Errors) == 0:
		return StatusSuccess
	case len(r.Moved) == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}

// Duration returns the elapsed batch time
func (r *MoveReport) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// RestoredFile records a single reversed move during undo
type RestoredFile struct {
	// From is the post-move location the file was found at
	From string

	// To is the path the file was restored to; differs from the original
	// source only if that slot was occupied in the interim
	To string
}

// UndoError records a single failed restoration; never fatal to the undo run
type UndoError struct {
	// Path is the post-move location that could not be restored
	Path string

	// Message is the diagnostic text for the failure
	Message string
}

// UndoReport represents the results of reversing the last move batch
type UndoReport struct {
	// Restored lists every move that was reversed
	Restored []RestoredFile

	// Errors lists restorations that failed (typically the file vanished
	// from its post-move location)
	Errors []UndoError

	// Root is the inferred original root folder pruning stopped at.
	// Empty when the log held no records.
	Root string

	// PrunedDirs lists the now-empty directories removed after restoring
	PrunedDirs []string
}

// Status derives the overall undo status
func (r *UndoReport) Status() BatchStatus {
	switch {
	case len(r.Restored) == 0 && len(r.Errors) == 0:
		return StatusNothingToDo
	case len(r.Errors) == 0:
		return StatusSuccess
	case len(r.Restored) == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}
