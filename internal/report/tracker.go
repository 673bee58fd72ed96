// Package report aggregates per-job outcomes for rendering: a Tracker keeps
// ordered status snapshots and overall progress, and a ConsoleReporter turns
// transitions into log lines.
package report

import (
	"sync"

	"github.com/galleryget/gallery-downloader/internal/model"
)

// Tracker holds the latest snapshot of every job in a batch, in submission
// order. It is safe for a worker goroutine to update while a render loop
// reads.
type Tracker struct {
	mu   sync.RWMutex
	jobs []model.GalleryJob
}

// NewTracker creates a tracker seeded with the batch's initial snapshots.
func NewTracker(jobs []model.GalleryJob) *Tracker {
	t := &Tracker{jobs: make([]model.GalleryJob, len(jobs))}
	copy(t.jobs, jobs)
	return t
}

// Update replaces the stored snapshot for the job at snapshot.Index.
func (t *Tracker) Update(snapshot model.GalleryJob) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if snapshot.Index >= 0 && snapshot.Index < len(t.jobs) {
		t.jobs[snapshot.Index] = snapshot
	}
}

// Jobs returns the current snapshots in submission order.
func (t *Tracker) Jobs() []model.GalleryJob {
	t.mu.RLock()
	defer t.mu.RUnlock()
	jobs := make([]model.GalleryJob, len(t.jobs))
	copy(jobs, t.jobs)
	return jobs
}

// Total returns the batch size.
func (t *Tracker) Total() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.jobs)
}

// TerminalCount returns how many jobs reached Succeeded or Failed.
func (t *Tracker) TerminalCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, job := range t.jobs {
		if job.Status.IsTerminal() {
			count++
		}
	}
	return count
}

// SucceededCount returns how many jobs finished successfully.
func (t *Tracker) SucceededCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, job := range t.jobs {
		if job.Status == model.StatusSucceeded {
			count++
		}
	}
	return count
}

// Progress returns terminal jobs over total, in [0, 1]. Progress granularity
// is per gallery; gallery-dl's own per-file output is not parsed.
func (t *Tracker) Progress() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.jobs) == 0 {
		return 0
	}

	terminal := 0
	for _, job := range t.jobs {
		if job.Status.IsTerminal() {
			terminal++
		}
	}
	return float64(terminal) / float64(len(t.jobs))
}

// Done reports whether every job reached a terminal state.
func (t *Tracker) Done() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, job := range t.jobs {
		if !job.Status.IsTerminal() {
			return false
		}
	}
	return len(t.jobs) > 0
}
