package model

// JobStatus represents the status of a gallery download job
type JobStatus string

const (
	// StatusQueued means the job is waiting for the pipeline to reach it
	StatusQueued JobStatus = "Queued"

	// StatusAnalyzing means the page title is being resolved for the job
	StatusAnalyzing JobStatus = "Analyzing"

	// StatusDownloading means gallery-dl is running for the job
	StatusDownloading JobStatus = "Downloading"

	// StatusSucceeded means gallery-dl exited cleanly
	StatusSucceeded JobStatus = "Succeeded"

	// StatusFailed means the job failed (folder creation or downloader error)
	StatusFailed JobStatus = "Failed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is currently being processed
func (js JobStatus) IsActive() bool {
	return js == StatusAnalyzing || js == StatusDownloading
}

// IsTerminal returns true if the job reached a final state. Jobs never leave
// a terminal state; there are no retries.
func (js JobStatus) IsTerminal() bool {
	return js == StatusSucceeded || js == StatusFailed
}
