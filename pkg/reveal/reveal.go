// Package reveal opens a path in the platform's file browser. It is a
// best-effort convenience hook behind a capability interface so the
// export flow stays testable without a desktop environment.
package reveal

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/modstack/pkg/logging"
)

// Revealer shows a path in the user's file browser
type Revealer interface {
	Reveal(path string) error
}

// osRevealer shells out to the platform opener
type osRevealer struct{}

// NewOS returns a Revealer for the current platform. Platforms without a
// known opener get a noop.
func NewOS() Revealer {
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		return &osRevealer{}
	default:
		return Noop()
	}
}

func (r *osRevealer) Reveal(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", "-R", path)
	case "windows":
		cmd = exec.Command("explorer", "/select,", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	logger := logging.GetLogger("reveal")
	logger.Debug().Str("path", path).Str("opener", cmd.Path).Msg("Revealing path")
	return cmd.Start()
}

// noopRevealer does nothing
type noopRevealer struct{}

// Noop returns a Revealer that does nothing, for headless environments
// and tests
func Noop() Revealer {
	return &noopRevealer{}
}

func (r *noopRevealer) Reveal(string) error {
	return nil
}
