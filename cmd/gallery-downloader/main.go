package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/galleryget/gallery-downloader/internal/config"
	"github.com/galleryget/gallery-downloader/internal/download"
	"github.com/galleryget/gallery-downloader/internal/gallerydl"
	"github.com/galleryget/gallery-downloader/internal/title"
	"github.com/galleryget/gallery-downloader/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.galleryget.gallery-downloader")
	myWindow := myApp.NewWindow("Gallery Downloader")
	myWindow.Resize(fyne.NewSize(760, 640))

	settings := config.NewSettings(myApp)
	resolver := title.NewResolver(title.WithTimeout(settings.GetTitleTimeout()))
	invoker := gallerydl.NewInvoker(gallerydl.WithBinary(settings.GetGalleryDLPath()))
	downloadSvc := download.NewService(resolver, invoker, settings.GetBaseDirectory(), nil)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc)

	// Show and run
	myWindow.ShowAndRun()
}
