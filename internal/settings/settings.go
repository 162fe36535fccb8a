// Package settings provides pintas' own application settings using Viper.
// These are distinct from the alias store: settings tune where the store
// and shim directory live, the store itself holds the aliases.
package settings

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pintas-sh/pintas/internal/paths"
)

// AppName is the application name used for settings file naming.
const AppName = "pintas"

// Settings represents the top-level settings structure.
type Settings struct {
	// ConfigFile is the alias store path. Relative paths resolve against
	// the working directory, which keeps per-project stores working.
	ConfigFile string `mapstructure:"config_file" yaml:"config_file"`

	// ShimDir is where shim scripts are generated.
	ShimDir string `mapstructure:"shim_dir" yaml:"shim_dir"`

	// AutoSync regenerates shims after every successful mutation.
	AutoSync bool `mapstructure:"auto_sync" yaml:"auto_sync"`
}

// Init initializes Viper with default settings.
// Call this once at application startup before accessing settings values.
func Init() {
	// Settings file
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support: PINTAS_SHIM_DIR etc.
	viper.SetEnvPrefix("PINTAS")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("config_file", paths.ConfigFile())
	viper.SetDefault("shim_dir", paths.ShimDir())
	viper.SetDefault("auto_sync", true)
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns defaults if no file is found (when path is empty).
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If settings file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("settings file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	return &s, nil
}
