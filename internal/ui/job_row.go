package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/galleryget/gallery-downloader/internal/model"
)

// JobRow renders one gallery job: folder name, compacted URL, status, and an
// open-folder action for finished downloads.
type JobRow struct {
	widget.BaseWidget

	job          model.GalleryJob
	localization *Localization

	nameLabel   *widget.Label
	urlLabel    *widget.Label
	statusLabel *widget.Label
	openBtn     *widget.Button

	onOpenFolder func(path string)
}

// NewJobRow creates a row for the given job snapshot
func NewJobRow(job model.GalleryJob, localization *Localization) *JobRow {
	jr := &JobRow{
		job:          job,
		localization: localization,
	}
	jr.ExtendBaseWidget(jr)
	jr.createUI()
	jr.updateFromJob()
	return jr
}

// SetOpenFolderCallback sets the action for the open button
func (jr *JobRow) SetOpenFolderCallback(callback func(path string)) {
	jr.onOpenFolder = callback
}

// UpdateJob replaces the rendered snapshot
func (jr *JobRow) UpdateJob(job model.GalleryJob) {
	jr.job = job
	jr.updateFromJob()
	jr.Refresh()
}

func (jr *JobRow) createUI() {
	jr.nameLabel = widget.NewLabel("")
	jr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	jr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	jr.urlLabel = widget.NewLabel("")
	jr.urlLabel.TextStyle = fyne.TextStyle{Monospace: true}
	jr.urlLabel.Truncation = fyne.TextTruncateEllipsis

	jr.statusLabel = widget.NewLabel("")
	jr.statusLabel.Alignment = fyne.TextAlignTrailing

	jr.openBtn = widget.NewButton(jr.localization.GetText(KeyOpenFolder), func() {
		if jr.onOpenFolder != nil && jr.job.DestinationPath != "" {
			jr.onOpenFolder(jr.job.DestinationPath)
		}
	})
	jr.openBtn.Importance = widget.LowImportance
}

// updateFromJob refreshes labels and the open button from the snapshot
func (jr *JobRow) updateFromJob() {
	jr.nameLabel.SetText(jr.job.DisplayName())
	jr.urlLabel.SetText(jr.job.DisplayURL())

	switch jr.job.Status {
	case model.StatusSucceeded:
		jr.statusLabel.Importance = widget.SuccessImportance
		jr.statusLabel.SetText(IconSuccess + " " + jr.job.Status.String())
	case model.StatusFailed:
		jr.statusLabel.Importance = widget.DangerImportance
		text := IconFailure + " " + jr.job.Status.String()
		if jr.job.LastError != "" {
			text += ": " + jr.job.LastError
		}
		jr.statusLabel.SetText(text)
	case model.StatusDownloading, model.StatusAnalyzing:
		jr.statusLabel.Importance = widget.HighImportance
		jr.statusLabel.SetText(jr.job.Status.String() + "…")
	default:
		jr.statusLabel.Importance = widget.MediumImportance
		jr.statusLabel.SetText(jr.job.Status.String())
	}

	// The folder exists from the moment the job starts downloading; partial
	// results are worth opening even for failed jobs.
	if jr.job.DestinationPath != "" {
		jr.openBtn.Enable()
	} else {
		jr.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (jr *JobRow) CreateRenderer() fyne.WidgetRenderer {
	left := container.NewVBox(jr.nameLabel, jr.urlLabel)
	right := container.NewVBox(jr.statusLabel, jr.openBtn)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, right, left),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable inside the list
func (jr *JobRow) MinSize() fyne.Size {
	min := jr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
