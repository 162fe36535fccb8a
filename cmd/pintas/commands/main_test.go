package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/settings"
)

// setupStore points the package-level settings at a fresh temp store and
// shim directory, returning the store path and shim dir.
func setupStore(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	store := filepath.Join(dir, "pintas.toml")
	shims := filepath.Join(dir, "shims")

	prevSettings, prevErr := appSettings, settingsLoadErr
	appSettings = &settings.Settings{
		ConfigFile: store,
		ShimDir:    shims,
		AutoSync:   true,
	}
	settingsLoadErr = nil
	t.Cleanup(func() {
		appSettings, settingsLoadErr = prevSettings, prevErr
	})

	return store, shims
}

// newTestCmd returns a command with captured output and a background context.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.Background())
	return cmd, buf
}
