package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Commands used to open a folder in the platform file manager
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Fallback file managers probed on Linux when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// EnsureDir creates the directory if it doesn't exist. Creating an existing
// directory is not an error.
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ProvisionJobDir creates <baseDir>/<name> and returns its absolute path.
// An unwritable base directory surfaces here and is fatal for the affected
// job only.
func ProvisionJobDir(baseDir, name string) (string, error) {
	target := filepath.Join(baseDir, name)
	if err := os.MkdirAll(target, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("create destination folder %s: %w", target, err)
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve destination folder %s: %w", target, err)
	}
	return absPath, nil
}

// DefaultBaseDir returns the standard location for gallery downloads,
// <home>/Downloads/galleries, falling back to ./downloads when the home
// directory cannot be determined.
func DefaultBaseDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "downloads"
	}
	return filepath.Join(homeDir, "Downloads", "galleries")
}

// OpenFolder opens the given directory in the system file manager.
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		return fmt.Errorf("folder does not exist: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first, then common file managers.
func openFolderLinux(dirPath string) error {
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
