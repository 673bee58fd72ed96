package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/galleryget/gallery-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBaseDir          = "base_directory"
	KeyGalleryDLPath    = "gallery_dl_path"
	KeyTitleTimeoutSecs = "title_timeout_seconds"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultTitleTimeoutSecs = 10
	DefaultLanguage         = "system"
)

// Settings manages GUI application configuration backed by Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the configured destination base directory,
// initializing it to the platform default on first run.
func (s *Settings) GetBaseDirectory() string {
	dir := s.app.Preferences().String(KeyBaseDir)
	if dir == "" {
		dir = platform.DefaultBaseDir()
		s.SetBaseDirectory(dir)
	}
	return dir
}

// SetBaseDirectory sets the destination base directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDir, dir)
}

// GetGalleryDLPath returns the configured gallery-dl executable path.
// Empty means "look it up on PATH".
func (s *Settings) GetGalleryDLPath() string {
	return s.app.Preferences().String(KeyGalleryDLPath)
}

// SetGalleryDLPath sets the gallery-dl executable path
func (s *Settings) SetGalleryDLPath(path string) {
	s.app.Preferences().SetString(KeyGalleryDLPath, path)
}

// GetTitleTimeout returns the page title fetch timeout
func (s *Settings) GetTitleTimeout() time.Duration {
	secs := s.app.Preferences().Int(KeyTitleTimeoutSecs)
	if secs <= 0 {
		s.SetTitleTimeout(DefaultTitleTimeoutSecs)
		return DefaultTitleTimeoutSecs * time.Second
	}
	return time.Duration(secs) * time.Second
}

// SetTitleTimeout sets the title fetch timeout in whole seconds
func (s *Settings) SetTitleTimeout(secs int) {
	if secs < 1 {
		secs = 1
	}
	if secs > 120 {
		secs = 120
	}
	s.app.Preferences().SetInt(KeyTitleTimeoutSecs, secs)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
