package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/pkg/fileutil"
)

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "toml", "output format: toml, yaml")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the alias store",
	Long: `Export serializes the alias store to stdout (or a file) in TOML or
YAML, for backup or for carrying aliases to another machine with
'pintas import'.`,
	Example: `  pintas export > backup.toml
  pintas export --format yaml -o aliases.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	path, err := storePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	data, err := marshalStore(cfg, exportFormat)
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := fileutil.AtomicWriteFile(exportOut, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", exportOut)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d alias(es) to %s\n", len(cfg.Aliases), exportOut)
	return nil
}

func marshalStore(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(cfg)
	case "yaml":
		return yaml.Marshal(cfg)
	default:
		return nil, errors.NewUserError(
			errors.Newf("unknown format %q", format), "Use --format toml or --format yaml")
	}
}
