package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/internal/runner"
)

func init() {
	pickCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick [args...]",
	Short: "Fuzzy-pick an alias and run it",
	Long: `Pick opens an interactive fuzzy finder over all aliases and runs the
selection, forwarding any trailing arguments as positional parameters.
Aborting the finder exits without running anything.`,
	Example: `  pintas pick
  pintas pick main   # the picked alias receives "main" as $1`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	path, err := storePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	aliases := alias.Sorted(cfg)
	if len(aliases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No aliases found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		aliases,
		func(i int) string {
			return fmt.Sprintf("%s: %s", aliases[i].Name, truncate(aliases[i].Command, 60))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Alias: %s\n\nCommand:\n%s", aliases[i].Name, aliases[i].Command)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	picked := aliases[idx]
	fmt.Fprintf(cmd.OutOrStdout(), "Executing command: '%s'\n", picked.Command)

	d := &runner.Dispatcher{}
	res, err := d.Dispatch(cmd.Context(), cfg, picked.Name, args)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return errors.Newf("command finished with an error (exit code: %d)", res.ExitCode)
	}
	return nil
}
