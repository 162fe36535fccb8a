package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Exit codes used by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, missing alias, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2

	// ExitFallthrough is the reserved exit code emitted by the internal run
	// path when the alias (or the whole config) cannot be resolved. Shell
	// hooks treat it as "not ours, fall through to command-not-found".
	ExitFallthrough = 126
)

// Sentinel errors for common failure conditions.
var (
	// ErrConfigNotFound indicates the alias config file does not exist.
	ErrConfigNotFound = crdberrors.New("config file not found")

	// ErrConfigParse indicates the alias config file is not valid TOML
	// matching the expected shape.
	ErrConfigParse = crdberrors.New("config file is not valid")

	// ErrConfigWrite indicates the alias config file could not be written.
	ErrConfigWrite = crdberrors.New("config file could not be written")

	// ErrAliasExists indicates an add targeted a name that is already taken.
	ErrAliasExists = crdberrors.New("alias already exists")

	// ErrAliasNotFound indicates the requested alias is not in the config.
	ErrAliasNotFound = crdberrors.New("alias not found")

	// ErrUnsupportedShell indicates the shell has no integration snippet.
	ErrUnsupportedShell = crdberrors.New("shell not supported")

	// ErrProcessSpawn indicates the subshell could not be started at all,
	// as opposed to running and exiting nonzero.
	ErrProcessSpawn = crdberrors.New("failed to spawn command")
)

// Re-exports so callers use a single errors package.
var (
	New    = crdberrors.New
	Newf   = crdberrors.Newf
	Wrap   = crdberrors.Wrap
	Wrapf  = crdberrors.Wrapf
	Is     = crdberrors.Is
	As     = crdberrors.As
	Unwrap = crdberrors.Unwrap
)

// ExitError wraps an error with an exit code for CLI boundary handling.
// It implements the error interface and supports unwrapping via Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Silent suppresses all diagnostic output. The internal run path sets
	// it so shims communicate purely through the exit code.
	Silent bool
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewSilentExit creates an ExitError that carries only an exit code.
// Used by the internal run path to mirror the child's exit status verbatim.
func NewSilentExit(code int) *ExitError {
	return &ExitError{
		Code:   code,
		Silent: true,
	}
}

// NewFallthrough creates the silent ExitFallthrough error emitted when the
// internal run path cannot resolve an alias.
func NewFallthrough(err error) *ExitError {
	return &ExitError{
		Err:    err,
		Code:   ExitFallthrough,
		Silent: true,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling Is and As to examine the
// error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
