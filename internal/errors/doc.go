// Package errors provides error handling conventions for the pintas CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, pintaserr.ErrAliasNotFound) {
//	    // handle not found case
//	}
//
// # Exit Codes
//
// The package defines the exit codes used by the CLI:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, missing alias, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//   - ExitFallthrough (126): Reserved signal emitted by the internal run
//     path meaning "alias or config not resolvable"; shell hooks consume
//     it to fall through to their own command-not-found handling
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code, an optional
// suggestion, and a Silent flag. The internal run path uses Silent exits
// so that shims and shell hooks see only the exit code, never diagnostic
// text. It supports error unwrapping via [Is] and [As]:
//
//	var exitErr *pintaserr.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
