package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galleryget/gallery-downloader/internal/model"
)

type stubResolver struct {
	titles map[string]string // url → title; missing url means resolve failure
}

func (r *stubResolver) Resolve(_ context.Context, pageURL string) (string, error) {
	if t, ok := r.titles[pageURL]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unreachable")
}

type stubDownloader struct {
	mu      sync.Mutex
	failFor map[string]error // url → error to return
	calls   []string         // destination dirs in invocation order
}

func (d *stubDownloader) Download(_ context.Context, url, destDir string) error {
	d.mu.Lock()
	d.calls = append(d.calls, destDir)
	d.mu.Unlock()
	if err, ok := d.failFor[url]; ok {
		return err
	}
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestService_AddBatch(t *testing.T) {
	svc := NewService(&stubResolver{}, &stubDownloader{}, t.TempDir(), quietLogger())

	jobs, err := svc.AddBatch([]string{"https://a.example/g1", "https://b.example/g2"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	for i, job := range jobs {
		assert.Equal(t, model.StatusQueued, job.Status)
		assert.Equal(t, i, job.Index)
		assert.NotEmpty(t, job.ID)
	}
	assert.NotEqual(t, jobs[0].ID, jobs[1].ID)

	_, err = svc.AddBatch(nil)
	assert.Error(t, err)
}

func TestService_Run_TitledPage(t *testing.T) {
	base := t.TempDir()
	resolver := &stubResolver{titles: map[string]string{
		"https://example.com/gallery/12345": "My Vacation Photos",
	}}
	dl := &stubDownloader{}
	svc := NewService(resolver, dl, base, quietLogger())

	_, err := svc.AddBatch([]string{"https://example.com/gallery/12345"})
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))

	jobs := svc.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, model.StatusSucceeded, jobs[0].Status)
	assert.Equal(t, "My Vacation Photos", jobs[0].ResolvedName)
	assert.Equal(t, "My Vacation Photos", filepath.Base(jobs[0].DestinationPath))
	assert.DirExists(t, filepath.Join(base, "My Vacation Photos"))

	require.Len(t, dl.calls, 1)
	assert.Equal(t, jobs[0].DestinationPath, dl.calls[0])
}

func TestService_Run_SlugFallback(t *testing.T) {
	base := t.TempDir()
	svc := NewService(&stubResolver{}, &stubDownloader{}, base, quietLogger())

	_, err := svc.AddBatch([]string{"https://example.com/galleries/artwork_collection"})
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))

	jobs := svc.Jobs()
	assert.Equal(t, model.StatusSucceeded, jobs[0].Status)
	assert.Equal(t, "artwork_collection", jobs[0].ResolvedName)
	assert.DirExists(t, filepath.Join(base, "artwork_collection"))
}

func TestService_Run_DownloaderFailureDoesNotStopBatch(t *testing.T) {
	base := t.TempDir()
	dl := &stubDownloader{failFor: map[string]error{
		"https://a.example/bad": fmt.Errorf("exit status 4"),
	}}
	svc := NewService(&stubResolver{}, dl, base, quietLogger())

	_, err := svc.AddBatch([]string{"https://a.example/bad", "https://b.example/good"})
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))

	jobs := svc.Jobs()
	require.Len(t, jobs, 2)

	assert.Equal(t, model.StatusFailed, jobs[0].Status)
	assert.Contains(t, jobs[0].LastError, "exit status 4")
	assert.Equal(t, model.StatusSucceeded, jobs[1].Status)

	// Both jobs reached a terminal state.
	for _, job := range jobs {
		assert.True(t, job.Status.IsTerminal())
		assert.False(t, job.FinishedAt.IsZero())
	}
}

func TestService_Run_FilesystemFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are unreliable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	base := t.TempDir()
	require.NoError(t, os.Chmod(base, 0o500))
	defer os.Chmod(base, 0o700)

	dl := &stubDownloader{}
	svc := NewService(&stubResolver{}, dl, base, quietLogger())

	_, err := svc.AddBatch([]string{"https://a.example/g1"})
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))

	jobs := svc.Jobs()
	assert.Equal(t, model.StatusFailed, jobs[0].Status)
	assert.NotEmpty(t, jobs[0].LastError)
	// The downloader must never run when provisioning failed.
	assert.Empty(t, dl.calls)
}

func TestService_Run_TransitionsAreOneDirectional(t *testing.T) {
	base := t.TempDir()
	svc := NewService(&stubResolver{}, &stubDownloader{}, base, quietLogger())

	order := map[model.JobStatus]int{
		model.StatusQueued:      0,
		model.StatusAnalyzing:   1,
		model.StatusDownloading: 2,
		model.StatusSucceeded:   3,
		model.StatusFailed:      3,
	}

	seen := make(map[string][]model.JobStatus)
	svc.SetUpdateCallback(func(job model.GalleryJob) {
		seen[job.ID] = append(seen[job.ID], job.Status)
	})

	_, err := svc.AddBatch([]string{"https://a.example/g1", "https://b.example/g2"})
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))

	for id, statuses := range seen {
		last := -1
		for _, status := range statuses {
			rank, ok := order[status]
			require.True(t, ok, "unknown status %s", status)
			assert.GreaterOrEqual(t, rank, last, "job %s went backwards: %v", id, statuses)
			last = rank
		}
		assert.True(t, statuses[len(statuses)-1].IsTerminal())
	}
}

func TestService_Run_RejectsEmptyAndConcurrent(t *testing.T) {
	svc := NewService(&stubResolver{}, &stubDownloader{}, t.TempDir(), quietLogger())

	assert.Error(t, svc.Run(context.Background()), "expected error with no jobs queued")
}
