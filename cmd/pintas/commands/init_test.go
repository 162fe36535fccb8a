package commands

import (
	"strings"
	"testing"

	"github.com/pintas-sh/pintas/internal/errors"
)

func TestRunInit_Bash(t *testing.T) {
	_, shims := setupStore(t)
	cmd, out := newTestCmd(t)

	if err := runInit(cmd, []string{"bash"}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"command_not_found_handler()",
		"run --internal",
		shims,
		"-eq 126",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("snippet missing %q:\n%s", want, got)
		}
	}
}

func TestRunInit_UnsupportedShell(t *testing.T) {
	setupStore(t)
	cmd, _ := newTestCmd(t)

	err := runInit(cmd, []string{"fish"})
	if !errors.Is(err, errors.ErrUnsupportedShell) {
		t.Fatalf("runInit() error = %v, want ErrUnsupportedShell", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("expected *ExitError with a suggestion")
	}
	if !strings.Contains(exitErr.Suggestion, "bash") {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}
