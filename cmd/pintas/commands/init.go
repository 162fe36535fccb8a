package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/internal/paths"
	"github.com/pintas-sh/pintas/internal/shell"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Print the shell integration snippet",
	Long: `Init prints a shell snippet to standard output: a PATH export for the
shim directory plus a command-not-found hook that routes unresolved
commands through pintas. Nothing is installed automatically; eval the
output or paste it into your shell's startup file.`,
	Example: `  eval "$(pintas init bash)"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := getSettings()
	if err != nil {
		return err
	}

	exe, err := paths.Executable()
	if err != nil {
		return err
	}

	snippet, err := shell.Snippet(args[0], exe, s.ShimDir)
	if err != nil {
		if errors.Is(err, errors.ErrUnsupportedShell) {
			suggestion := "Supported shells: " + strings.Join(shell.Supported(), ", ")
			return errors.NewUserError(err, suggestion)
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), snippet)
	return nil
}
