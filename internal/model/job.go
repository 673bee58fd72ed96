package model

import (
	"strings"
	"time"
)

// GalleryJob represents a single gallery URL moving through the pipeline:
// Queued → Analyzing → Downloading → Succeeded/Failed.
type GalleryJob struct {
	ID              string
	Index           int    // submission order within the batch, 0-based
	URL             string
	ResolvedName    string // sanitized folder name, empty until Analyzing ran
	DestinationPath string // absolute destination folder, empty until provisioned
	Status          JobStatus
	LastError       string // last error message if any
	CreatedAt       time.Time
	FinishedAt      time.Time // zero until the job reaches a terminal state
}

// DisplayName returns the resolved folder name, or the URL while the name
// is not known yet.
func (j *GalleryJob) DisplayName() string {
	if j.ResolvedName != "" {
		return j.ResolvedName
	}
	return j.URL
}

// DisplayURL returns the URL compacted for single-line rendering.
func (j *GalleryJob) DisplayURL() string {
	url := strings.TrimSpace(j.URL)
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return url
}

// Snapshot returns a copy of the job safe to hand to another goroutine.
// The pipeline worker is the only writer; render code must only ever see
// copies.
func (j *GalleryJob) Snapshot() GalleryJob {
	return *j
}
