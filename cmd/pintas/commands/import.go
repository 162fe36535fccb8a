package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/pkg/fileutil"
)

var (
	importFormat  string
	importReplace bool
)

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "input format: toml, yaml (default: by file extension)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the whole store instead of merging")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import aliases from an exported file",
	Long: `Import reads aliases from a TOML or YAML file produced by
'pintas export' and merges them into the store. Merging refuses to
overwrite existing names; --replace swaps in the imported set wholesale.`,
	Example: `  pintas import backup.toml
  pintas import aliases.yaml --replace`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	file := args[0]

	data, err := fileutil.ReadFileWithLimit(file)
	if err != nil {
		return err
	}

	incoming, err := unmarshalStore(data, formatFor(file, importFormat))
	if err != nil {
		return err
	}

	path, err := storePath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrEmpty(path)
	if err != nil {
		return err
	}

	if importReplace {
		cfg.Aliases = incoming.Aliases
	} else {
		var conflicts []string
		for name := range incoming.Aliases {
			if _, ok := cfg.Aliases[name]; ok {
				conflicts = append(conflicts, name)
			}
		}
		if len(conflicts) > 0 {
			sort.Strings(conflicts)
			return errors.NewUserError(
				errors.Newf("aliases already exist: %s", strings.Join(conflicts, ", ")),
				"Use --replace to overwrite the whole store")
		}
		for name, command := range incoming.Aliases {
			cfg.Aliases[name] = command
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	if err := maybeSyncShims(cmd.Context(), cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d alias(es).\n", len(incoming.Aliases))
	return nil
}

// formatFor picks the input format: an explicit flag wins, otherwise the
// file extension decides, defaulting to TOML.
func formatFor(file, flag string) string {
	if flag != "" {
		return flag
	}
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func unmarshalStore(data []byte, format string) (*config.Config, error) {
	cfg := config.New()
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing YAML")
		}
	default:
		return nil, errors.NewUserError(
			errors.Newf("unknown format %q", format), "Use --format toml or --format yaml")
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}
	return cfg, nil
}
