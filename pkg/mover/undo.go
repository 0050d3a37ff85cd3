package mover

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/mbeckers/vidsort/internal/platform"
	"github.com/mbeckers/vidsort/pkg/logging"
	"github.com/mbeckers/vidsort/pkg/models"
)

// ErrNoUndoLog indicates there is nothing to undo. A normal negative
// result, not an exceptional condition.
var ErrNoUndoLog = errors.New("no undo log found")

// Undoer reverses the most recent move batch recorded in the undo log
type Undoer struct {
	logPath string
	logger  logging.Logger
}

// NewUndoer creates an undoer reading the log at logPath. An empty logPath
// selects the default log location; a nil logger discards log output.
func NewUndoer(logPath string, logger logging.Logger) *Undoer {
	if logPath == "" {
		logPath = DefaultLogPath()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Undoer{logPath: logPath, logger: logger}
}

// UndoLast reverses every recorded move in strict reverse order of the
// original batch, prunes the now-empty directories that batch created, and
// deletes the undo log. Individual restorations that fail (typically the
// file vanished from its post-move location) are reported, not retried, and
// never abort the rest of the undo. A missing log returns ErrNoUndoLog; a
// malformed log is a hard failure and the log is left in place.
func (u *Undoer) UndoLast(ctx context.Context) (*models.UndoReport, error) {
	if !pathExists(u.logPath) {
		return nil, ErrNoUndoLog
	}

	log, err := readUndoLog(u.logPath)
	if err != nil {
		return nil, err
	}

	report := &models.UndoReport{}

	if len(log.Moved) == 0 {
		u.removeLog(ctx)
		return report, nil
	}

	report.Root = u.inferRoot(log.Moved)

	for i := len(log.Moved) - 1; i >= 0; i-- {
		rec := log.Moved[i]
		u.restoreOne(ctx, rec, report)
	}

	report.PrunedDirs = u.pruneDirs(ctx, log.Moved, report.Root)

	u.removeLog(ctx)
	return report, nil
}

// inferRoot guesses the original root folder as the common ancestor of
// every recorded source directory. Falls back to an arbitrary source
// directory when a common ancestor cannot be computed; with sources from
// genuinely different trees this is a documented approximation.
func (u *Undoer) inferRoot(moved []models.MoveRecord) string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, rec := range moved {
		dir := filepath.Dir(rec.SourcePath)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	root, ok := platform.CommonAncestor(dirs)
	if !ok {
		root = dirs[0]
	}
	return root
}

func (u *Undoer) restoreOne(ctx context.Context, rec models.MoveRecord, report *models.UndoReport) {
	src := rec.FinalPath
	dst := rec.SourcePath

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		report.Errors = append(report.Errors, models.UndoError{
			Path:    src,
			Message: err.Error(),
		})
		return
	}

	if !pathExists(src) {
		report.Errors = append(report.Errors, models.UndoError{
			Path:    src,
			Message: "file not found at recorded location",
		})
		return
	}

	// The original slot may be occupied by an unrelated file by now.
	final := dst
	if pathExists(final) {
		final = UniquePath(final)
	}

	if err := os.Rename(src, final); err != nil {
		report.Errors = append(report.Errors, models.UndoError{
			Path:    src,
			Message: err.Error(),
		})
		u.logger.Error(ctx, "restore failed", err, logging.Fields{"src": src, "dst": final})
		return
	}

	report.Restored = append(report.Restored, models.RestoredFile{From: src, To: final})
	u.logger.Info(ctx, "restored file", logging.Fields{"src": src, "dst": final})
}

// pruneDirs removes the now-empty destination folders the original batch
// used, deepest first, then walks each one's ancestry upward deleting empty
// parents one level at a time. Pruning stops before (never deletes) the
// inferred root and at the first non-empty or non-existent ancestor.
func (u *Undoer) pruneDirs(ctx context.Context, moved []models.MoveRecord, root string) []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, rec := range moved {
		dir := filepath.Dir(rec.FinalPath)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		return platform.Depth(dirs[i]) > platform.Depth(dirs[j])
	})

	cleanRoot := filepath.Clean(root)
	var pruned []string

	for _, dir := range dirs {
		if removeIfEmpty(dir) {
			pruned = append(pruned, dir)
			u.logger.Debug(ctx, "pruned empty directory", logging.Fields{"dir": dir})
		}

		parent := filepath.Dir(dir)
		for parent != cleanRoot && parent != filepath.Dir(parent) {
			if !removeIfEmpty(parent) {
				break
			}
			pruned = append(pruned, parent)
			u.logger.Debug(ctx, "pruned empty directory", logging.Fields{"dir": parent})
			parent = filepath.Dir(parent)
		}
	}

	return pruned
}

// removeIfEmpty deletes dir only when it is an empty directory
func removeIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}
	return os.Remove(dir) == nil
}

// removeLog deletes the undo log; failure to delete is tolerated
func (u *Undoer) removeLog(ctx context.Context) {
	if err := os.Remove(u.logPath); err != nil && !os.IsNotExist(err) {
		u.logger.Warn(ctx, "failed to remove undo log", logging.Fields{
			"path":  u.logPath,
			"error": err.Error(),
		})
	}
}
