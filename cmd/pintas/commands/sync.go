package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/config"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate shim scripts from the alias store",
	Long: `Sync wipes the shim directory and writes one executable script per
alias. Each shim execs pintas' internal run path, so putting the shim
directory on PATH makes every alias directly invocable.

Mutating commands re-sync automatically unless auto_sync is disabled;
sync exists for first-time setup and manual repair.`,
	Example: `  pintas sync
  eval "$(pintas init bash)"`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	path, err := storePath()
	if err != nil {
		return err
	}

	// A missing store syncs to an empty shim directory.
	cfg, err := config.LoadOrEmpty(path)
	if err != nil {
		return err
	}

	dir, count, err := syncShims(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Synced %d shim(s) to %s\n", count, dir)
	return nil
}
