// Package runner dispatches a resolved alias to a subshell.
//
// The command string is handed to `sh -c` as the script body. The alias
// name becomes the script's $0 and the forwarded CLI arguments become
// $1, $2, ... so alias commands can reference positional parameters:
//
//	pintas add greet 'echo "hello, $1"'
//	pintas run greet world
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
)

// Result is the outcome of dispatching an alias. The tagged shape keeps
// the reserved fall-through exit code a single translation at the process
// boundary instead of scattered special-casing.
type Result struct {
	// Resolved reports whether the alias mapped to a command. When false
	// the accompanying error explains why and ExitCode is meaningless.
	Resolved bool

	// Command is the resolved command string.
	Command string

	// ExitCode is the child's exit status. Only meaningful when Resolved.
	ExitCode int
}

// Dispatcher resolves aliases and executes them in a subshell.
// The zero value uses `sh` and the process's standard streams.
type Dispatcher struct {
	// Shell is the shell binary to spawn. Defaults to "sh".
	Shell string

	// Stdin, Stdout, Stderr default to the process streams, matching the
	// no-capture contract: child output goes wherever ours does.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Dispatch resolves name in cfg and runs its command with args as the
// script's positional parameters, blocking until the child exits.
//
// A missing alias returns an unresolved Result and ErrAliasNotFound.
// A child that starts and exits (any status) is a resolved Result with
// a nil error; only failure to spawn at all is an error.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *config.Config, name string, args []string) (Result, error) {
	command, err := alias.Resolve(cfg, name)
	if err != nil {
		return Result{Resolved: false}, err
	}

	shell := d.Shell
	if shell == "" {
		shell = "sh"
	}

	// sh -c <command> <name> <args...>: name becomes $0, args become $1..
	argv := append([]string{"-c", command, name}, args...)
	cmd := exec.CommandContext(ctx, shell, argv...)

	cmd.Stdin = d.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = d.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = d.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Resolved: true, Command: command, ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{}, errors.Wrapf(errors.ErrProcessSpawn, "%q: %v", command, err)
	}

	return Result{Resolved: true, Command: command, ExitCode: 0}, nil
}
