package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")

	if err := EnsureDir(target); err != nil {
		t.Fatalf("EnsureDir() failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call must be a no-op, not an error.
	if err := EnsureDir(target); err != nil {
		t.Errorf("EnsureDir() on existing dir failed: %v", err)
	}
}

func TestProvisionJobDir(t *testing.T) {
	base := t.TempDir()

	got, err := ProvisionJobDir(base, "My Vacation Photos")
	if err != nil {
		t.Fatalf("ProvisionJobDir() failed: %v", err)
	}

	if !filepath.IsAbs(got) {
		t.Errorf("Expected absolute path, got %s", got)
	}
	if filepath.Base(got) != "My Vacation Photos" {
		t.Errorf("Expected folder named 'My Vacation Photos', got %s", filepath.Base(got))
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("Expected directory to exist: %v", err)
	}

	// Provisioning the same folder twice must succeed.
	again, err := ProvisionJobDir(base, "My Vacation Photos")
	if err != nil {
		t.Fatalf("ProvisionJobDir() on existing folder failed: %v", err)
	}
	if again != got {
		t.Errorf("Expected same path on repeat, got %s and %s", got, again)
	}
}

func TestProvisionJobDir_UnwritableBase(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are unreliable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	base := t.TempDir()
	if err := os.Chmod(base, 0o500); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	defer os.Chmod(base, 0o700)

	if _, err := ProvisionJobDir(base, "blocked"); err == nil {
		t.Error("Expected error for unwritable base directory, got nil")
	}
}

func TestDefaultBaseDir(t *testing.T) {
	dir := DefaultBaseDir()
	if dir == "" {
		t.Error("Expected non-empty default base dir")
	}
	if filepath.Base(dir) != "galleries" && dir != "downloads" {
		t.Errorf("Unexpected default base dir: %s", dir)
	}
}
