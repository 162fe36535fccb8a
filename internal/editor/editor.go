// Package editor launches the user's preferred text editor on the alias
// store, for when hand-editing pintas.toml beats a series of edit commands.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pintas-sh/pintas/internal/errors"
)

// Open launches the user's preferred editor on path, announcing the file
// location on w first. The editor inherits the terminal.
func Open(w io.Writer, path string) error {
	name := Detect()

	fmt.Fprintf(w, "Opening %s with %s\n", path, name)

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %s", name)
	}

	return nil
}

// Detect returns the editor command to use. Fallback chain:
// $EDITOR, then $VISUAL, then nano if installed, then vi.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// nano is the friendlier default when present
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// vi is everywhere
	return "vi"
}
