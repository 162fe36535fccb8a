package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <alias> <command>",
	Short: "Add a new alias",
	Long: `Add stores a new alias in pintas.toml, creating the file if it does
not exist yet. The command string is kept verbatim; quote it so your
shell does not expand it at add time.`,
	Example: `  pintas add gs "git status"
  pintas add co "git checkout $1"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, command := args[0], args[1]

	path, err := storePath()
	if err != nil {
		return err
	}

	// A missing store is the empty store: first add creates the file.
	cfg, err := config.LoadOrEmpty(path)
	if err != nil {
		return err
	}

	if err := alias.Add(cfg, name, command); err != nil {
		if errors.Is(err, errors.ErrAliasExists) {
			return errors.NewUserError(err, "Use 'pintas edit' to modify it")
		}
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	if err := maybeSyncShims(cmd.Context(), cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully added alias '%s'.\n", name)
	return nil
}
