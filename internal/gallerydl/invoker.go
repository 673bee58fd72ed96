// Package gallerydl invokes the external gallery-dl tool. The tool owns all
// of the hard parts (site support, rate limits, resume); this package only
// launches it against a destination folder and reports the exit status.
package gallerydl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the gallery-dl executable looked up on PATH.
const DefaultBinary = "gallery-dl"

// Arguments passed on every invocation:
//   - "-f /O" keeps original filenames when the site provides them
//   - "-D" forces the exact destination directory, bypassing gallery-dl's
//     own site/album subfolder scheme
const (
	filenameFlag      = "-f"
	originalFilenames = "/O"
	destinationFlag   = "-D"
	versionFlag       = "--version"
)

// ErrBinaryNotFound is returned when gallery-dl is not installed or not on
// PATH. The message is shown to the user as-is.
var ErrBinaryNotFound = errors.New("gallery-dl not found; install it with 'pip install gallery-dl'")

// Invoker runs gallery-dl as a subprocess
type Invoker struct {
	binaryPath string
	stdout     io.Writer
	stderr     io.Writer
}

// Option configures an Invoker
type Option func(*Invoker)

// WithBinary overrides the gallery-dl executable path
func WithBinary(path string) Option {
	return func(inv *Invoker) {
		if path != "" {
			inv.binaryPath = path
		}
	}
}

// WithOutput redirects subprocess stdout, mainly for the GUI and tests
func WithOutput(stdout io.Writer) Option {
	return func(inv *Invoker) {
		inv.stdout = stdout
	}
}

// NewInvoker creates an invoker using gallery-dl from PATH. Stdout of the
// subprocess is surfaced to the console by default.
func NewInvoker(opts ...Option) *Invoker {
	inv := &Invoker{
		binaryPath: DefaultBinary,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Download runs gallery-dl against url with destDir as the exact target
// directory. A non-zero exit is returned as an error carrying the tail of
// stderr; callers treat it as a per-job failure, never a batch abort.
func (inv *Invoker) Download(ctx context.Context, url, destDir string) error {
	cmd := exec.CommandContext(ctx, inv.binaryPath,
		filenameFlag, originalFilenames,
		destinationFlag, destDir,
		url,
	)

	var stderr bytes.Buffer
	cmd.Stdout = inv.stdout
	cmd.Stderr = io.MultiWriter(&stderr, inv.stderr)

	if err := cmd.Run(); err != nil {
		if isNotFound(err) {
			return ErrBinaryNotFound
		}
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("gallery-dl failed: %w: %s", err, msg)
		}
		return fmt.Errorf("gallery-dl failed: %w", err)
	}
	return nil
}

// Version reports the installed gallery-dl version, used as a startup probe.
func (inv *Invoker) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, inv.binaryPath, versionFlag).Output()
	if err != nil {
		if isNotFound(err) {
			return "", ErrBinaryNotFound
		}
		return "", fmt.Errorf("gallery-dl --version failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// isNotFound covers both a missing PATH lookup and an explicit binary path
// that points nowhere.
func isNotFound(err error) bool {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return errors.Is(execErr.Err, exec.ErrNotFound) || errors.Is(execErr.Err, fs.ErrNotExist)
	}
	return false
}

// lastLine returns the final non-empty line of s, which for gallery-dl is
// the most specific error message.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
