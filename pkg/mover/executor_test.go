package mover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mbeckers/vidsort/pkg/models"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func planOp(dir, name, folderName string) models.PlannedOperation {
	folder := filepath.Join(dir, folderName)
	return models.PlannedOperation{
		SourcePath:        filepath.Join(dir, name),
		DestinationFolder: folder,
		DestinationPath:   filepath.Join(folder, name),
		OriginalFilename:  name,
	}
}

// ============== UniquePath Tests ==============

func TestUniquePath(t *testing.T) {
	t.Run("FreePathUnchanged", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movie.mkv")
		if got := UniquePath(path); got != path {
			t.Errorf("UniquePath(%q) = %q, want unchanged", path, got)
		}
	})

	t.Run("SuffixMatchesCollisionCount", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "movie.mkv")

		// With the base plus suffixes (1)..(n-1) taken, n collisions in
		// total, the resolved path carries suffix (n).
		writeTestFile(t, path, "x")
		for n := 1; n <= 3; n++ {
			want := filepath.Join(dir, fmt.Sprintf("movie (%d).mkv", n))
			if got := UniquePath(path); got != want {
				t.Errorf("with %d collisions: UniquePath = %q, want %q", n, got, want)
			}
			writeTestFile(t, want, "x")
		}
	})

	t.Run("SuffixBeforeExtension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "show.s01e01.mkv")
		writeTestFile(t, path, "x")

		want := filepath.Join(dir, "show.s01e01 (1).mkv")
		if got := UniquePath(path); got != want {
			t.Errorf("UniquePath = %q, want %q", got, want)
		}
	})

	t.Run("NoExtension", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "README")
		writeTestFile(t, path, "x")

		want := filepath.Join(dir, "README (1)")
		if got := UniquePath(path); got != want {
			t.Errorf("UniquePath = %q, want %q", got, want)
		}
	})
}

// ============== Execute Tests ==============

func TestExecuteMovesFiles(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "undo.json")
	writeTestFile(t, filepath.Join(dir, "a.mkv"), "video-a")
	writeTestFile(t, filepath.Join(dir, "b.mkv"), "video-b")

	ops := []models.PlannedOperation{
		planOp(dir, "a.mkv", "Alpha"),
		planOp(dir, "b.mkv", "Beta"),
	}

	exec := NewExecutor(logPath, nil)
	report := exec.Execute(context.Background(), ops, true)

	if got := report.Status(); got != models.StatusSuccess {
		t.Errorf("Status() = %v, want %v", got, models.StatusSuccess)
	}
	if len(report.Moved) != 2 {
		t.Fatalf("Moved = %d records, want 2", len(report.Moved))
	}
	if len(report.Errors) != 0 {
		t.Fatalf("Errors = %v, want none", report.Errors)
	}
	if report.BatchID == "" {
		t.Error("BatchID should be set")
	}
	if report.LogPath != logPath {
		t.Errorf("LogPath = %q, want %q", report.LogPath, logPath)
	}

	for _, rec := range report.Moved {
		data, err := os.ReadFile(rec.FinalPath)
		if err != nil {
			t.Errorf("moved file missing at %s: %v", rec.FinalPath, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("moved file at %s is empty", rec.FinalPath)
		}
		if _, err := os.Lstat(rec.SourcePath); err == nil {
			t.Errorf("source %s still exists after move", rec.SourcePath)
		}
	}

	log, err := readUndoLog(logPath)
	if err != nil {
		t.Fatalf("readUndoLog() error = %v", err)
	}
	if len(log.Moved) != 2 {
		t.Errorf("undo log has %d records, want 2", len(log.Moved))
	}
	if log.BatchID != report.BatchID {
		t.Errorf("undo log batch %q, want %q", log.BatchID, report.BatchID)
	}
	if _, err := time.Parse(time.RFC3339, log.Timestamp); err != nil {
		t.Errorf("undo log timestamp %q is not RFC 3339: %v", log.Timestamp, err)
	}
}

func TestExecuteCollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "a.mkv"), "incoming")

	op := planOp(dir, "a.mkv", "Alpha")
	writeTestFile(t, op.DestinationPath, "already there")

	exec := NewExecutor(filepath.Join(dir, "undo.json"), nil)
	report := exec.Execute(context.Background(), []models.PlannedOperation{op}, false)

	if len(report.Moved) != 1 {
		t.Fatalf("Moved = %d records, want 1", len(report.Moved))
	}
	want := filepath.Join(dir, "Alpha", "a (1).mkv")
	if report.Moved[0].FinalPath != want {
		t.Errorf("FinalPath = %q, want %q", report.Moved[0].FinalPath, want)
	}

	kept, err := os.ReadFile(op.DestinationPath)
	if err != nil || string(kept) != "already there" {
		t.Errorf("pre-existing file was disturbed: %q, %v", kept, err)
	}
}

func TestExecuteErrorDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "good.mkv"), "x")

	ops := []models.PlannedOperation{
		planOp(dir, "missing.mkv", "Gone"),
		planOp(dir, "good.mkv", "Kept"),
	}

	logPath := filepath.Join(dir, "undo.json")
	exec := NewExecutor(logPath, nil)
	report := exec.Execute(context.Background(), ops, true)

	if got := report.Status(); got != models.StatusPartial {
		t.Errorf("Status() = %v, want %v", got, models.StatusPartial)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("Errors = %d, want 1", len(report.Errors))
	}
	if report.Errors[0].Op.OriginalFilename != "missing.mkv" {
		t.Errorf("failed op = %q, want missing.mkv", report.Errors[0].Op.OriginalFilename)
	}
	if len(report.Moved) != 1 {
		t.Fatalf("Moved = %d records, want 1", len(report.Moved))
	}

	// Only the successful move is recorded for undo.
	log, err := readUndoLog(logPath)
	if err != nil {
		t.Fatalf("readUndoLog() error = %v", err)
	}
	if len(log.Moved) != 1 || log.Moved[0].OriginalFilename != "good.mkv" {
		t.Errorf("undo log records = %+v, want only good.mkv", log.Moved)
	}
}

func TestExecuteNoLogWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "undo.json")
	writeTestFile(t, filepath.Join(dir, "a.mkv"), "x")

	exec := NewExecutor(logPath, nil)
	report := exec.Execute(context.Background(), []models.PlannedOperation{planOp(dir, "a.mkv", "Alpha")}, false)

	if len(report.Moved) != 1 {
		t.Fatalf("Moved = %d records, want 1", len(report.Moved))
	}
	if report.LogPath != "" {
		t.Errorf("LogPath = %q, want empty when logging disabled", report.LogPath)
	}
	if _, err := os.Lstat(logPath); err == nil {
		t.Error("undo log written despite logging disabled")
	}
}

func TestExecuteNoLogWhenNothingMoved(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "undo.json")

	exec := NewExecutor(logPath, nil)
	report := exec.Execute(context.Background(), []models.PlannedOperation{planOp(dir, "missing.mkv", "Gone")}, true)

	if got := report.Status(); got != models.StatusFailed {
		t.Errorf("Status() = %v, want %v", got, models.StatusFailed)
	}
	if _, err := os.Lstat(logPath); err == nil {
		t.Error("undo log written for a batch with zero successful moves")
	}
}

func TestExecuteObserver(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "a.mkv"), "x")

	ops := []models.PlannedOperation{
		planOp(dir, "a.mkv", "Alpha"),
		planOp(dir, "missing.mkv", "Gone"),
	}

	var okCount, errCount int
	exec := NewExecutor(filepath.Join(dir, "undo.json"), nil)
	exec.SetObserver(func(rec *models.MoveRecord, moveErr *models.MoveError) {
		switch {
		case rec != nil && moveErr == nil:
			okCount++
		case rec == nil && moveErr != nil:
			errCount++
		default:
			t.Error("observer called with both or neither argument set")
		}
	})
	exec.Execute(context.Background(), ops, false)

	if okCount != 1 || errCount != 1 {
		t.Errorf("observer saw %d successes and %d errors, want 1 and 1", okCount, errCount)
	}
}
