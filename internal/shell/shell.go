// Package shell emits the integration snippets users paste into their
// shell startup files. Nothing here executes anything: the snippet goes
// to stdout and the user decides what to do with it.
package shell

import (
	"fmt"

	"github.com/pintas-sh/pintas/internal/errors"
)

// Bash is the only shell with an integration snippet today.
const Bash = "bash"

// Supported returns the shells Snippet accepts.
func Supported() []string {
	return []string{Bash}
}

const bashTemplate = `# pintas shell integration for bash
# Add the following line to your ~/.bashrc:
#   eval "$(%[1]s init bash)"

# Put generated shims on PATH for direct alias invocation.
export PATH="%[2]s:$PATH"

# Route unresolved commands through pintas. Exit code %[3]d means
# "pintas has no such alias", so fall through to bash's own
# command-not-found behavior.
command_not_found_handler() {
  %[1]q run --internal "$@"
  local exit_code=$?

  if [ $exit_code -eq %[3]d ]; then
    printf 'bash: %%s: command not found\n' "$1" >&2
    return 127
  else
    return $exit_code
  fi
}
`

// Snippet renders the integration snippet for the given shell.
// exePath is embedded so the hook works regardless of the user's PATH;
// shimDir is exported onto PATH for direct shim invocation.
// Returns ErrUnsupportedShell for anything but bash.
func Snippet(shellName, exePath, shimDir string) (string, error) {
	switch shellName {
	case Bash:
		return fmt.Sprintf(bashTemplate, exePath, shimDir, errors.ExitFallthrough), nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedShell, "%q", shellName)
	}
}
