// Package shim generates the executable wrapper scripts that make
// aliases directly invocable from a shell's PATH.
//
// Shims are disposable: every sync wipes the shim directory and rebuilds
// it wholesale from the current alias store, so the directory never needs
// partial reconciliation. A shim is a two-line POSIX script that execs
// the pintas binary's internal run path:
//
//	#!/bin/sh
//	exec "/path/to/pintas" run --internal gs "$@"
package shim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pintas-sh/pintas/internal/alias"
	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
	"github.com/pintas-sh/pintas/internal/paths"
	"github.com/pintas-sh/pintas/pkg/fileutil"
)

// ScriptPerm makes shims executable by everyone, like any other PATH entry.
const ScriptPerm = 0o755

// Script renders the shim body for one alias.
func Script(exePath, name string) string {
	return fmt.Sprintf("#!/bin/sh\nexec %q run --internal %s \"$@\"\n", exePath, name)
}

// Sync rebuilds dir so it contains exactly one shim per alias in cfg.
//
// Existing regular files directly inside dir are removed first, including
// shims for aliases that no longer exist; subdirectories are left alone.
// The first error aborts the whole sync.
func Sync(dir, exePath string, cfg *config.Config) error {
	if err := paths.EnsureDir(dir, ScriptPerm); err != nil {
		return errors.Wrapf(err, "creating shim directory %q", dir)
	}

	if err := wipe(dir); err != nil {
		return err
	}

	for _, a := range alias.Sorted(cfg) {
		path := filepath.Join(dir, a.Name)
		body := []byte(Script(exePath, a.Name))
		if err := fileutil.AtomicWriteFile(path, body, ScriptPerm); err != nil {
			return errors.Wrapf(err, "writing shim %q", a.Name)
		}
	}

	return nil
}

// wipe removes every regular file directly inside dir.
func wipe(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "reading shim directory %q", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return errors.Wrapf(err, "removing stale shim %q", entry.Name())
		}
	}

	return nil
}
