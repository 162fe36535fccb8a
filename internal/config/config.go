package config

import (
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/pkg/fileutil"
)

// FilePerm is the permission applied to the alias store file.
const FilePerm = 0o644

// Config is the persisted alias store.
type Config struct {
	Aliases map[string]string `toml:"aliases"`
}

// New returns an empty Config with an initialized alias map.
func New() *Config {
	return &Config{Aliases: map[string]string{}}
}

// Load reads the alias store at path.
// Returns ErrConfigNotFound if the file does not exist and ErrConfigParse
// if the contents are not valid TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrConfigNotFound, "%q", path)
		}
		return nil, errors.Wrapf(err, "reading %q", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "%q: %v", path, err)
	}

	// A file without an [aliases] table decodes to a nil map.
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}

	return &cfg, nil
}

// LoadOrEmpty reads the alias store at path, treating a missing file as an
// empty store. Parse failures still surface: a corrupt file must not be
// silently replaced by the next save.
func LoadOrEmpty(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrConfigNotFound) {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save serializes cfg and atomically replaces the store at path.
// Returns ErrConfigWrite on any filesystem failure.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrapf(err, "serializing %q", path)
	}

	if err := fileutil.AtomicWriteFile(path, data, FilePerm); err != nil {
		return errors.Wrapf(errors.ErrConfigWrite, "%q: %v", path, err)
	}

	return nil
}
