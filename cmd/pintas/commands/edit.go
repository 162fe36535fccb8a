package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <alias> <command>",
	Short: "Replace the command of an existing alias",
	Long: `Edit replaces the command string of an existing alias. Unlike add,
it does not create a missing store: editing something that was never
added is an error.`,
	Example: `  pintas edit gs "git status -sb"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	name, command := args[0], args[1]

	path, err := storePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrConfigNotFound) {
			return errors.NewUserError(err, "Run 'pintas add' to create your first alias")
		}
		return err
	}

	if err := alias.Edit(cfg, name, command); err != nil {
		if errors.Is(err, errors.ErrAliasNotFound) {
			return errors.NewUserError(err, "Use 'pintas add' to create it")
		}
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	if err := maybeSyncShims(cmd.Context(), cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully edited alias '%s'.\n", name)
	return nil
}
