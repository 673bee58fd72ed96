package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBaseDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default value
	dir := settings.GetBaseDirectory()
	if dir == "" {
		t.Error("Base directory should not be empty")
	}

	// Custom value round-trips
	customDir := "/custom/galleries"
	settings.SetBaseDirectory(customDir)

	if got := settings.GetBaseDirectory(); got != customDir {
		t.Errorf("Expected base directory %s, got %s", customDir, got)
	}
}

func TestGalleryDLPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty by default, meaning PATH lookup
	if got := settings.GetGalleryDLPath(); got != "" {
		t.Errorf("Expected empty gallery-dl path by default, got %s", got)
	}

	settings.SetGalleryDLPath("/opt/bin/gallery-dl")
	if got := settings.GetGalleryDLPath(); got != "/opt/bin/gallery-dl" {
		t.Errorf("Expected /opt/bin/gallery-dl, got %s", got)
	}
}

func TestTitleTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default value
	if got := settings.GetTitleTimeout(); got != DefaultTitleTimeoutSecs*time.Second {
		t.Errorf("Expected default timeout %ds, got %v", DefaultTitleTimeoutSecs, got)
	}

	settings.SetTitleTimeout(30)
	if got := settings.GetTitleTimeout(); got != 30*time.Second {
		t.Errorf("Expected 30s, got %v", got)
	}

	// Boundary values are clamped
	settings.SetTitleTimeout(0)
	if got := settings.GetTitleTimeout(); got != time.Second {
		t.Errorf("Expected clamp to 1s, got %v", got)
	}

	settings.SetTitleTimeout(999)
	if got := settings.GetTitleTimeout(); got != 120*time.Second {
		t.Errorf("Expected clamp to 120s, got %v", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected ru, got %s", got)
	}
}
