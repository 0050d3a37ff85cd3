package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mbeckers/vidsort/pkg/models"
	"github.com/mbeckers/vidsort/pkg/mover"
	"github.com/mbeckers/vidsort/pkg/scan"
)

// TestHelper provides utilities for integration tests
type TestHelper struct {
	t       *testing.T
	dir     string
	logPath string
	planner *scan.Planner
}

// NewTestHelper creates a new integration test helper
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	dir := t.TempDir()
	return &TestHelper{
		t:       t,
		dir:     dir,
		logPath: filepath.Join(dir, "vidsort_last_run.json"),
		planner: scan.NewPlanner(nil, nil, nil),
	}
}

// CreateFile creates a file in the scanned directory
func (h *TestHelper) CreateFile(name, content string) {
	h.t.Helper()
	path := filepath.Join(h.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		h.t.Fatalf("failed to create file: %v", err)
	}
}

// Plan builds the move plan for the scanned directory
func (h *TestHelper) Plan(opts models.Options) []models.PlannedOperation {
	h.t.Helper()
	ops, err := h.planner.Plan(h.dir, opts)
	if err != nil {
		h.t.Fatalf("plan failed: %v", err)
	}
	return ops
}

// Organize plans and executes a batch with undo logging enabled
func (h *TestHelper) Organize(opts models.Options) *models.MoveReport {
	h.t.Helper()
	exec := mover.NewExecutor(h.logPath, nil)
	return exec.Execute(context.Background(), h.Plan(opts), true)
}

// Undo reverses the last batch
func (h *TestHelper) Undo() *models.UndoReport {
	h.t.Helper()
	undoer := mover.NewUndoer(h.logPath, nil)
	report, err := undoer.UndoLast(context.Background())
	if err != nil {
		h.t.Fatalf("undo failed: %v", err)
	}
	return report
}

// AssertExists fails unless the named path exists under the scanned directory
func (h *TestHelper) AssertExists(parts ...string) {
	h.t.Helper()
	path := filepath.Join(append([]string{h.dir}, parts...)...)
	if _, err := os.Lstat(path); err != nil {
		h.t.Errorf("expected %s to exist: %v", path, err)
	}
}

// AssertMissing fails if the named path exists under the scanned directory
func (h *TestHelper) AssertMissing(parts ...string) {
	h.t.Helper()
	path := filepath.Join(append([]string{h.dir}, parts...)...)
	if _, err := os.Lstat(path); err == nil {
		h.t.Errorf("expected %s to be gone", path)
	}
}

// ============== End-to-End Tests ==============

func TestOrganizeLibrary(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("Show.Name.S01E01.1080p.WEBRip.x264.mkv", "episode 1")
	h.CreateFile("Show.Name.S01E02.1080p.WEBRip.x264.mkv", "episode 2")
	h.CreateFile("Show.Name.S01E01.srt", "subtitle")
	h.CreateFile("Movie.Title.2023.4K.HDR.mkv", "movie")
	h.CreateFile("Orphan.Subtitle.srt", "orphan")
	h.CreateFile("notes.txt", "notes")

	opts := models.Options{MoveCompanionFiles: true, CreateSeasonSubfolders: true}
	report := h.Organize(opts)

	if got := report.Status(); got != models.StatusSuccess {
		t.Fatalf("status = %v, want %v (errors: %+v)", got, models.StatusSuccess, report.Errors)
	}
	if len(report.Moved) != 4 {
		t.Fatalf("moved = %d files, want 4", len(report.Moved))
	}

	h.AssertExists("Show Name", "Season 01", "Show.Name.S01E01.1080p.WEBRip.x264.mkv")
	h.AssertExists("Show Name", "Season 01", "Show.Name.S01E02.1080p.WEBRip.x264.mkv")
	h.AssertExists("Show Name", "Season 01", "Show.Name.S01E01.srt")
	h.AssertExists("Movie Title 2023", "Movie.Title.2023.4K.HDR.mkv")

	// Orphaned companions and unrelated files stay put.
	h.AssertExists("Orphan.Subtitle.srt")
	h.AssertExists("notes.txt")
	h.AssertExists("vidsort_last_run.json")

	// A second scan of the same folder finds nothing left to move.
	if ops := h.Plan(opts); len(ops) != 0 {
		t.Errorf("re-scan planned %d operations, want 0", len(ops))
	}
}

func TestOrganizeThenUndoRoundTrip(t *testing.T) {
	h := NewTestHelper(t)
	names := []string{
		"Show.Name.S01E01.mkv",
		"Show.Name.S01E01.srt",
		"Movie.Title.2023.mkv",
	}
	for _, name := range names {
		h.CreateFile(name, "content of "+name)
	}

	opts := models.Options{MoveCompanionFiles: true, CreateSeasonSubfolders: true}
	h.Organize(opts)

	report := h.Undo()
	if got := report.Status(); got != models.StatusSuccess {
		t.Fatalf("undo status = %v, want %v (errors: %+v)", got, models.StatusSuccess, report.Errors)
	}
	if len(report.Restored) != 3 {
		t.Fatalf("restored = %d files, want 3", len(report.Restored))
	}

	// The tree is back to its original flat shape.
	for _, name := range names {
		h.AssertExists(name)
	}
	h.AssertMissing("Show Name")
	h.AssertMissing("Movie Title 2023")
	h.AssertMissing("vidsort_last_run.json")
}

func TestOrganizeCollisionKeepsBothFiles(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFile("Movie.Title.2023.mkv", "incoming")
	h.CreateFile(filepath.Join("Movie Title 2023", "Movie.Title.2023.mkv"), "existing")

	report := h.Organize(models.Options{})
	if len(report.Moved) != 1 {
		t.Fatalf("moved = %d files, want 1", len(report.Moved))
	}

	h.AssertExists("Movie Title 2023", "Movie.Title.2023.mkv")
	h.AssertExists("Movie Title 2023", "Movie.Title.2023 (1).mkv")

	data, err := os.ReadFile(filepath.Join(h.dir, "Movie Title 2023", "Movie.Title.2023.mkv"))
	if err != nil || string(data) != "existing" {
		t.Errorf("pre-existing file was disturbed: %q, %v", data, err)
	}
}
