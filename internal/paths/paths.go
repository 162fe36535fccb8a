package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// ConfigFilename is the alias store file looked up in the working directory.
const ConfigFilename = "pintas.toml"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// PintasHome returns the pintas home directory: <home>/.pintas/
// Returns an empty string if the home directory cannot be determined.
func PintasHome() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".pintas")
}

// ShimDir returns the directory shim scripts are generated into:
// <home>/.pintas/shims/
//
// Returns an empty string if the home directory cannot be determined.
func ShimDir() string {
	pintasHome := PintasHome()
	if pintasHome == "" {
		return ""
	}
	return filepath.Join(pintasHome, "shims")
}

// ConfigFile returns the alias store path: ConfigFilename in the current
// working directory. The working directory is the unit of scoping; two
// projects get two independent alias sets.
func ConfigFile() string {
	return ConfigFilename
}

// Executable returns the absolute path of the running pintas binary,
// used to embed self-references in shims and shell snippets.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "resolving executable path")
	}
	return filepath.EvalSymlinks(exe)
}
