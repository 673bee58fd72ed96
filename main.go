package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/galleryget/gallery-downloader/internal/config"
	"github.com/galleryget/gallery-downloader/internal/download"
	"github.com/galleryget/gallery-downloader/internal/gallerydl"
	"github.com/galleryget/gallery-downloader/internal/platform"
	"github.com/galleryget/gallery-downloader/internal/title"
	"github.com/galleryget/gallery-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.galleryget.gallery-downloader"
	AppName = "Gallery Downloader"

	WindowWidth  = 760
	WindowHeight = 640
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	baseDir := settings.GetBaseDirectory()
	if err := platform.EnsureDir(baseDir); err != nil {
		fmt.Printf("failed to ensure base directory: %v\n", err)
	}

	resolver := title.NewResolver(title.WithTimeout(settings.GetTitleTimeout()))
	invoker := gallerydl.NewInvoker(gallerydl.WithBinary(settings.GetGalleryDLPath()))
	downloadSvc := download.NewService(resolver, invoker, baseDir, nil)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc)

	// Show and run
	myWindow.ShowAndRun()
}
