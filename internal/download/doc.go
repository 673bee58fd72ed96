package download

// Package download implements the per-URL pipeline shared by the CLI and the
// GUI: resolve a folder name (page title, slug fallback), provision the
// destination folder, invoke gallery-dl, and push status transitions to the
// registered update callback. Jobs run strictly one at a time; a failed job
// never stops the batch.
