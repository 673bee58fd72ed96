package download

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/galleryget/gallery-downloader/internal/model"
	"github.com/galleryget/gallery-downloader/internal/naming"
	"github.com/galleryget/gallery-downloader/internal/platform"
	"github.com/galleryget/gallery-downloader/internal/title"
)

// Service runs gallery jobs through the pipeline
type Service struct {
	resolver TitleResolver
	invoker  GalleryDownloader
	baseDir  string
	logger   *log.Logger

	jobsMutex sync.RWMutex
	jobs      []*model.GalleryJob
	running   bool
	onUpdate  func(model.GalleryJob) // receives snapshots, never live pointers
}

// NewService creates a pipeline service writing into baseDir
func NewService(resolver TitleResolver, invoker GalleryDownloader, baseDir string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		resolver: resolver,
		invoker:  invoker,
		baseDir:  baseDir,
		logger:   logger,
	}
}

// SetUpdateCallback registers the render hook. The callback runs on the
// worker goroutine and receives a job snapshot; GUI callers must hand it off
// to their event loop themselves.
func (s *Service) SetUpdateCallback(callback func(model.GalleryJob)) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	s.onUpdate = callback
}

// SetBaseDirectory changes the destination base directory for the next batch.
func (s *Service) SetBaseDirectory(baseDir string) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	s.baseDir = baseDir
}

// AddBatch replaces the job list with one Queued job per URL and returns the
// initial snapshots. The previous batch's jobs are discarded; nothing is
// persisted across batches.
func (s *Service) AddBatch(urls []string) ([]model.GalleryJob, error) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	if s.running {
		return nil, fmt.Errorf("a batch is already running")
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs to download")
	}

	s.jobs = make([]*model.GalleryJob, 0, len(urls))
	snapshots := make([]model.GalleryJob, 0, len(urls))
	for i, url := range urls {
		job := &model.GalleryJob{
			ID:        uuid.New().String(),
			Index:     i,
			URL:       url,
			Status:    model.StatusQueued,
			CreatedAt: time.Now(),
		}
		s.jobs = append(s.jobs, job)
		snapshots = append(snapshots, job.Snapshot())
	}
	return snapshots, nil
}

// Jobs returns snapshots of the current batch in submission order.
func (s *Service) Jobs() []model.GalleryJob {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	snapshots := make([]model.GalleryJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		snapshots = append(snapshots, job.Snapshot())
	}
	return snapshots
}

// Run processes the batch sequentially and blocks until every job reached a
// terminal state. Once started, the batch runs to completion; ctx only bounds
// the in-flight network and subprocess calls.
func (s *Service) Run(ctx context.Context) error {
	s.jobsMutex.Lock()
	if s.running {
		s.jobsMutex.Unlock()
		return fmt.Errorf("a batch is already running")
	}
	if len(s.jobs) == 0 {
		s.jobsMutex.Unlock()
		return fmt.Errorf("no jobs queued")
	}
	s.running = true
	jobs := s.jobs
	s.jobsMutex.Unlock()

	defer func() {
		s.jobsMutex.Lock()
		s.running = false
		s.jobsMutex.Unlock()
	}()

	for _, job := range jobs {
		s.runJob(ctx, job)
	}
	return nil
}

// runJob walks one job through Analyzing → Downloading → terminal state.
func (s *Service) runJob(ctx context.Context, job *model.GalleryJob) {
	s.logger.Printf("[%d/%d] processing %s", job.Index+1, len(s.jobs), job.URL)

	s.transition(job, model.StatusAnalyzing, nil)

	folderName := s.resolveFolderName(ctx, job)
	s.transition(job, model.StatusAnalyzing, func(j *model.GalleryJob) {
		j.ResolvedName = folderName
	})

	destDir, err := platform.ProvisionJobDir(s.baseDir, folderName)
	if err != nil {
		s.logger.Printf("  folder creation failed: %v", err)
		s.fail(job, err)
		return
	}

	s.transition(job, model.StatusDownloading, func(j *model.GalleryJob) {
		j.DestinationPath = destDir
	})
	s.logger.Printf("  downloading to %s", destDir)

	if err := s.invoker.Download(ctx, job.URL, destDir); err != nil {
		s.logger.Printf("  download failed: %v", err)
		s.fail(job, err)
		return
	}

	s.transition(job, model.StatusSucceeded, func(j *model.GalleryJob) {
		j.FinishedAt = time.Now()
	})
	s.logger.Printf("  done: %s", folderName)
}

// resolveFolderName prefers the page title and falls back to the URL slug.
// Either way the result is sanitized for the destination filesystem.
func (s *Service) resolveFolderName(ctx context.Context, job *model.GalleryJob) string {
	pageTitle, err := s.resolver.Resolve(ctx, job.URL)
	if err != nil {
		s.logger.Printf("  no title (%v), using URL path", err)
		return naming.Sanitize(title.SlugFromURL(job.URL))
	}
	s.logger.Printf("  found title: %s", pageTitle)
	return naming.Sanitize(pageTitle)
}

// transition applies mutate under the write lock, sets the status, and
// notifies the callback with a snapshot taken inside the critical section.
func (s *Service) transition(job *model.GalleryJob, status model.JobStatus, mutate func(*model.GalleryJob)) {
	s.jobsMutex.Lock()
	if mutate != nil {
		mutate(job)
	}
	job.Status = status
	snapshot := job.Snapshot()
	callback := s.onUpdate
	s.jobsMutex.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

func (s *Service) fail(job *model.GalleryJob, err error) {
	s.transition(job, model.StatusFailed, func(j *model.GalleryJob) {
		j.LastError = err.Error()
		j.FinishedAt = time.Now()
	})
}
