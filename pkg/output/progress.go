package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/mbeckers/vidsort/pkg/models"
)

// ProgressFormatter renders a progress bar across a move batch and falls
// back to the human formatter for previews and final reports.
type ProgressFormatter struct {
	*HumanFormatter
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a progress-bar formatter writing to w
// (nil = stdout)
func NewProgressFormatter(w io.Writer) *ProgressFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &ProgressFormatter{
		HumanFormatter: NewHumanFormatter(w),
		writer:         w,
	}
}

// StartBatch begins a bar spanning total operations
func (f *ProgressFormatter) StartBatch(total int) {
	f.bar = pb.New(total)
	f.bar.SetWriter(f.writer)
	f.bar.Start()
}

// Observe advances the bar by one operation. Matches mover.Observer so it
// can be registered directly on an executor.
func (f *ProgressFormatter) Observe(rec *models.MoveRecord, moveErr *models.MoveError) {
	if f.bar != nil {
		f.bar.Increment()
	}
}

// MoveComplete finishes the bar before rendering the report
func (f *ProgressFormatter) MoveComplete(report *models.MoveReport) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	return f.HumanFormatter.MoveComplete(report)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
