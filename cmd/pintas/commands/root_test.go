package commands

import (
	"testing"

	"github.com/pintas-sh/pintas/internal/errors"
)

func TestSetupLogging_QuietAndVerboseConflict(t *testing.T) {
	prevQuiet, prevVerbosity := quiet, verbosity
	quiet, verbosity = true, 1
	t.Cleanup(func() { quiet, verbosity = prevQuiet, prevVerbosity })

	cmd, _ := newTestCmd(t)

	err := setupLogging(cmd)
	if err == nil {
		t.Fatal("expected error for --quiet with --verbose")
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestSetupLogging_Defaults(t *testing.T) {
	prevQuiet, prevVerbosity := quiet, verbosity
	quiet, verbosity = false, 0
	t.Cleanup(func() { quiet, verbosity = prevQuiet, prevVerbosity })

	cmd, _ := newTestCmd(t)

	if err := setupLogging(cmd); err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	if cmd.Context() == nil {
		t.Error("setupLogging should attach a context with the logger")
	}
}

func TestGetSettings_SurfacesLoadError(t *testing.T) {
	prevSettings, prevErr := appSettings, settingsLoadErr
	appSettings, settingsLoadErr = nil, errors.New("bad settings")
	t.Cleanup(func() { appSettings, settingsLoadErr = prevSettings, prevErr })

	_, err := getSettings()
	if err == nil {
		t.Fatal("expected error when settings failed to load")
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
}
