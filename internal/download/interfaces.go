package download

import "context"

// TitleResolver resolves a display title for a gallery page. Errors are
// recoverable; the pipeline falls back to a URL-derived slug.
type TitleResolver interface {
	Resolve(ctx context.Context, pageURL string) (string, error)
}

// GalleryDownloader runs the external downloader against a destination
// folder. A returned error marks the job Failed.
type GalleryDownloader interface {
	Download(ctx context.Context, url, destDir string) error
}
