package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/galleryget/gallery-downloader/internal/config"
)

// SettingsDialog edits the persisted GUI configuration
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	baseDirEntry *widget.Entry
	binPathEntry *widget.Entry
	timeoutEntry *widget.Entry
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after values were written back.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}
	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings form
func (sd *SettingsDialog) createUI() {
	sd.baseDirEntry = widget.NewEntry()
	browseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	baseDirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.baseDirEntry)

	sd.binPathEntry = widget.NewEntry()
	sd.binPathEntry.SetPlaceHolder("gallery-dl")

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultTitleTimeoutSecs))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyBaseDirectory)),
		baseDirRow,
		widget.NewLabel(sd.localization.GetText(KeyGalleryDLPath)),
		sd.binPathEntry,
		widget.NewLabel(sd.localization.GetText(KeyTitleTimeout)),
		sd.timeoutEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings fills the form from preferences
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseDirEntry.SetText(sd.settings.GetBaseDirectory())
	sd.binPathEntry.SetText(sd.settings.GetGalleryDLPath())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetTitleTimeout().Seconds())))
}

// onBrowseDirectory opens the folder picker for the base directory
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.baseDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave writes the form back to preferences
func (sd *SettingsDialog) onSave(save bool) {
	if !save {
		return
	}

	sd.settings.SetBaseDirectory(sd.baseDirEntry.Text)
	sd.settings.SetGalleryDLPath(sd.binPathEntry.Text)

	if secs, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetTitleTimeout(secs)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
