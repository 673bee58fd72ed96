package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/galleryget/gallery-downloader/internal/config"
	"github.com/galleryget/gallery-downloader/internal/download"
	"github.com/galleryget/gallery-downloader/internal/model"
	"github.com/galleryget/gallery-downloader/internal/platform"
	"github.com/galleryget/gallery-downloader/internal/report"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	downloadSvc  *download.Service

	folderEntry  *widget.Entry
	urlsEntry    *widget.Entry
	downloadBtn  *widget.Button
	urlsLabel    *widget.Label
	folderLabel  *widget.Label
	progressText *widget.Label
	progressBar  *widget.ProgressBar
	jobList      *widget.List

	// rows and tracker are only touched on the Fyne event thread; the
	// pipeline worker reaches them exclusively through fyne.Do.
	rows    []model.GalleryJob
	tracker *report.Tracker
	running bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc *download.Service) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.downloadSvc.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.folderLabel = widget.NewLabel(ui.localization.GetText(KeyBaseDirectory))
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetBaseDirectory())
	browseBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseFolder)
	folderRow := container.NewBorder(nil, nil, ui.folderLabel, browseBtn, ui.folderEntry)

	ui.urlsLabel = widget.NewLabel(ui.localization.GetText(KeyURLsLabel))
	ui.urlsEntry = widget.NewMultiLineEntry()
	ui.urlsEntry.SetPlaceHolder("https://…")
	ui.urlsEntry.SetMinRowsVisible(URLEntryMinLines)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.progressText = widget.NewLabel(ui.localization.GetText(KeyProgress))
	ui.progressBar = widget.NewProgressBar()

	ui.jobList = widget.NewList(
		func() int { return len(ui.rows) },
		func() fyne.CanvasObject { return ui.createJobItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateJobItem(id, obj) },
	)

	top := container.NewVBox(
		folderRow,
		widget.NewSeparator(),
		ui.urlsLabel,
		ui.urlsEntry,
		ui.downloadBtn,
		widget.NewSeparator(),
		ui.progressText,
		ui.progressBar,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.jobList))
}

// createMenu creates the application menu with settings and language entries
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // capture for closure
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			item.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and persists the choice
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all visible texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.folderLabel.SetText(ui.localization.GetText(KeyBaseDirectory))
	ui.urlsLabel.SetText(ui.localization.GetText(KeyURLsLabel))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.progressText.SetText(ui.localization.GetText(KeyProgress))
	ui.jobList.Refresh()
}

// onBrowseFolder opens the folder picker for the base directory
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.folderEntry.SetText(ui.settings.GetBaseDirectory())
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onDownloadClick validates input and launches the batch worker
func (ui *RootUI) onDownloadClick() {
	if ui.running {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle),
			ui.localization.GetText(KeyBatchRunning), ui.window)
		return
	}

	text := strings.TrimSpace(ui.urlsEntry.Text)
	if text == "" {
		dialog.ShowError(fmt.Errorf("%s", ui.localization.GetText(KeyNoURLs)), ui.window)
		return
	}

	urls, skipped := download.ParseURLs(text)
	for _, token := range skipped {
		log.Printf("skipping invalid URL: %s", token)
	}
	if len(urls) == 0 {
		dialog.ShowError(fmt.Errorf("%s", ui.localization.GetText(KeyNoValidURLs)), ui.window)
		return
	}

	baseDir := strings.TrimSpace(ui.folderEntry.Text)
	if baseDir == "" {
		dialog.ShowError(fmt.Errorf("%s", ui.localization.GetText(KeyNoFolder)), ui.window)
		return
	}
	ui.settings.SetBaseDirectory(baseDir)
	ui.downloadSvc.SetBaseDirectory(baseDir)

	jobs, err := ui.downloadSvc.AddBatch(urls)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	ui.rows = jobs
	ui.tracker = report.NewTracker(jobs)
	ui.running = true
	ui.progressBar.SetValue(0)
	ui.downloadBtn.Disable()
	ui.jobList.Refresh()

	log.Printf("starting batch of %d gallery(s) into %s", len(jobs), baseDir)

	go func() {
		if err := ui.downloadSvc.Run(context.Background()); err != nil {
			log.Printf("batch failed to run: %v", err)
		}
		fyne.Do(ui.onBatchComplete)
	}()
}

// onJobUpdate receives snapshots from the pipeline worker goroutine and
// forwards them to the event thread. This is the only worker→UI channel.
func (ui *RootUI) onJobUpdate(job model.GalleryJob) {
	fyne.Do(func() {
		if ui.tracker == nil || job.Index >= len(ui.rows) {
			return
		}
		ui.tracker.Update(job)
		ui.rows[job.Index] = job
		ui.progressBar.SetValue(ui.tracker.Progress())
		ui.jobList.Refresh()
	})
}

// onBatchComplete re-enables input and shows the summary popup
func (ui *RootUI) onBatchComplete() {
	ui.running = false
	ui.downloadBtn.Enable()

	if ui.tracker == nil {
		return
	}
	succeeded := ui.tracker.SucceededCount()
	total := ui.tracker.Total()
	log.Printf("all downloads complete: %d/%d successful", succeeded, total)

	dialog.ShowInformation(
		ui.localization.GetText(KeyDownloadComplete),
		fmt.Sprintf(ui.localization.GetText(KeyCompletedSummary),
			succeeded, total, ui.folderEntry.Text),
		ui.window,
	)
}

// createJobItem creates a placeholder row for the list
func (ui *RootUI) createJobItem() fyne.CanvasObject {
	row := NewJobRow(model.GalleryJob{Status: model.StatusQueued}, ui.localization)
	row.SetOpenFolderCallback(ui.onOpenFolder)
	return row
}

// updateJobItem binds the row widget to the job at the given position
func (ui *RootUI) updateJobItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.rows) {
		return
	}
	if row, ok := obj.(*JobRow); ok {
		row.SetOpenFolderCallback(ui.onOpenFolder)
		row.UpdateJob(ui.rows[id])
	}
}

// onOpenFolder reveals a job's destination folder in the file manager
func (ui *RootUI) onOpenFolder(path string) {
	if err := platform.OpenFolder(path); err != nil {
		log.Printf("failed to open folder %s: %v", path, err)
		dialog.ShowError(err, ui.window)
	}
}
