package ui

// Package ui contains the Fyne-based desktop interface: folder picker, URL
// input, per-job status rows, overall progress bar, and the completion
// dialog. The pipeline runs on a worker goroutine; every update reaches the
// render thread through fyne.Do, so the UI never touches live pipeline state.
