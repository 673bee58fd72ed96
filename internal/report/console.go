package report

import (
	"log"

	"github.com/galleryget/gallery-downloader/internal/model"
)

// ConsoleReporter renders job transitions as log lines and keeps a Tracker
// current. It is the CLI's update callback.
type ConsoleReporter struct {
	tracker *Tracker
	logger  *log.Logger
}

// NewConsoleReporter creates a reporter over the given tracker.
func NewConsoleReporter(tracker *Tracker, logger *log.Logger) *ConsoleReporter {
	if logger == nil {
		logger = log.Default()
	}
	return &ConsoleReporter{tracker: tracker, logger: logger}
}

// OnUpdate records the snapshot and logs terminal transitions. Intermediate
// states are already logged by the pipeline itself; the reporter only adds
// the per-job verdict lines.
func (r *ConsoleReporter) OnUpdate(job model.GalleryJob) {
	r.tracker.Update(job)

	switch job.Status {
	case model.StatusSucceeded:
		r.logger.Printf("[%d/%d] ✓ %s", r.tracker.TerminalCount(), r.tracker.Total(), job.URL)
	case model.StatusFailed:
		r.logger.Printf("[%d/%d] ✗ %s: %s", r.tracker.TerminalCount(), r.tracker.Total(), job.URL, job.LastError)
	}
}

// Summary logs the final success/total line.
func (r *ConsoleReporter) Summary() {
	r.logger.Printf("download complete: %d/%d successful", r.tracker.SucceededCount(), r.tracker.Total())
}
