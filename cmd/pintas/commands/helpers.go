package commands

import (
	"context"

	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/logging"
	"github.com/pintas-sh/pintas/internal/paths"
	"github.com/pintas-sh/pintas/internal/shim"
)

// storePath resolves the alias store path from settings.
func storePath() (string, error) {
	s, err := getSettings()
	if err != nil {
		return "", err
	}
	return s.ConfigFile, nil
}

// syncShims rebuilds the shim directory from cfg and returns the directory
// and shim count.
func syncShims(ctx context.Context, cfg *config.Config) (string, int, error) {
	s, err := getSettings()
	if err != nil {
		return "", 0, err
	}

	exe, err := paths.Executable()
	if err != nil {
		return "", 0, err
	}

	if err := shim.Sync(s.ShimDir, exe, cfg); err != nil {
		return "", 0, err
	}

	logging.FromContext(ctx).Debug("synced shims",
		"dir", s.ShimDir, "count", len(cfg.Aliases))
	return s.ShimDir, len(cfg.Aliases), nil
}

// maybeSyncShims is called by mutating commands after a successful save.
// A failure here leaves the store and the shim directory inconsistent;
// the error is surfaced rather than rolled back.
func maybeSyncShims(ctx context.Context, cfg *config.Config) error {
	s, err := getSettings()
	if err != nil {
		return err
	}
	if !s.AutoSync {
		return nil
	}
	_, _, err = syncShims(ctx, cfg)
	return err
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
