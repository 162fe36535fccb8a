package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <alias>",
	Short:   "Remove an alias",
	Example: `  pintas remove gs`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	path, err := storePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := alias.Remove(cfg, name); err != nil {
		if errors.Is(err, errors.ErrAliasNotFound) {
			return errors.NewUserError(err, "Run 'pintas list' to see what exists")
		}
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	if err := maybeSyncShims(cmd.Context(), cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully removed alias '%s'.\n", name)
	return nil
}
