// Package alias implements the mutation and listing operations on the
// alias store. Names are compared exactly: no trimming, no case folding.
package alias

import (
	"sort"

	"github.com/pintas-sh/pintas/internal/config"
	"github.com/pintas-sh/pintas/internal/errors"
)

// Alias pairs a name with its command string.
type Alias struct {
	Name    string
	Command string
}

// Add inserts a new alias into cfg.
// Returns ErrAliasExists if the name is already taken.
func Add(cfg *config.Config, name, command string) error {
	if _, ok := cfg.Aliases[name]; ok {
		return errors.Wrapf(errors.ErrAliasExists, "%q", name)
	}
	cfg.Aliases[name] = command
	return nil
}

// Edit replaces the command of an existing alias.
// Returns ErrAliasNotFound if the name is absent.
func Edit(cfg *config.Config, name, command string) error {
	if _, ok := cfg.Aliases[name]; !ok {
		return errors.Wrapf(errors.ErrAliasNotFound, "%q", name)
	}
	cfg.Aliases[name] = command
	return nil
}

// Remove deletes an alias.
// Returns ErrAliasNotFound if the name is absent.
func Remove(cfg *config.Config, name string) error {
	if _, ok := cfg.Aliases[name]; !ok {
		return errors.Wrapf(errors.ErrAliasNotFound, "%q", name)
	}
	delete(cfg.Aliases, name)
	return nil
}

// Resolve looks up the command for name.
// Returns ErrAliasNotFound if the name is absent.
func Resolve(cfg *config.Config, name string) (string, error) {
	command, ok := cfg.Aliases[name]
	if !ok {
		return "", errors.Wrapf(errors.ErrAliasNotFound, "%q", name)
	}
	return command, nil
}

// Sorted returns all aliases ordered lexicographically by name, giving
// list output a deterministic order independent of insertion order.
func Sorted(cfg *config.Config) []Alias {
	out := make([]Alias, 0, len(cfg.Aliases))
	for name, command := range cfg.Aliases {
		out = append(out, Alias{Name: name, Command: command})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
