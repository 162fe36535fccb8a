package commands

import (
	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/editor"
	"github.com/pintas-sh/pintas/internal/errors"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the alias store in your editor",
	Long: `Open launches $EDITOR (or $VISUAL, nano, vi) on pintas.toml for bulk
hand edits. The store is created first if it does not exist, and shims
are re-synced afterwards so they match whatever you saved.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, _ []string) error {
	path, err := storePath()
	if err != nil {
		return err
	}

	// Make sure there is a file to edit.
	cfg, err := config.LoadOrEmpty(path)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	if err := editor.Open(cmd.OutOrStdout(), path); err != nil {
		return err
	}

	// Reload to pick up the user's edits; a broken file surfaces here.
	cfg, err = config.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrConfigParse) {
			return errors.NewUserError(err, "Fix the TOML and run 'pintas sync'")
		}
		return err
	}

	return maybeSyncShims(cmd.Context(), cfg)
}
