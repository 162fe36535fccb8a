package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/internal/runner"
)

// runInternal marks shim/hook invocations. Those communicate purely
// through exit codes: 126 for "no such alias, fall through", otherwise
// the child's exit status verbatim.
var runInternal bool

func init() {
	runCmd.Flags().BoolVar(&runInternal, "internal", false, "")
	_ = runCmd.Flags().MarkHidden("internal")

	// Everything after the alias belongs to the alias, including flags.
	runCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <alias> [args...]",
	Short: "Run an alias, forwarding arguments to its command",
	Long: `Run resolves an alias and executes its command in a subshell.

The command string is passed to sh -c, with the alias name as $0 and
any trailing arguments as $1, $2, and so on. Standard input, output,
and error are inherited from pintas itself.`,
	Example: `  pintas add co "git checkout $1"
  pintas run co main

  # Flags after the alias go to the command, not to pintas
  pintas run ls -la`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	name, rest := args[0], args[1:]

	path, err := storePath()
	if err != nil {
		if runInternal {
			return errors.NewFallthrough(err)
		}
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		// Config absent or unreadable means the alias can't exist.
		if runInternal {
			return errors.NewFallthrough(err)
		}
		return errors.Wrap(err, "loading pintas config")
	}

	command, err := alias.Resolve(cfg, name)
	if err != nil {
		if runInternal {
			return errors.NewFallthrough(err)
		}
		return err
	}

	if !runInternal {
		fmt.Fprintf(cmd.OutOrStdout(), "Executing command: '%s'\n", command)
	}

	d := &runner.Dispatcher{}
	res, err := d.Dispatch(cmd.Context(), cfg, name, rest)
	if err != nil {
		return err
	}

	if runInternal {
		// Mirror the child's exit status exactly, with no output of our own.
		return errors.NewSilentExit(res.ExitCode)
	}

	if res.ExitCode != 0 {
		return errors.Newf("command finished with an error (exit code: %d)", res.ExitCode)
	}

	return nil
}
