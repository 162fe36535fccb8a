// Package config implements the alias store: a single TOML file mapping
// alias names to shell command strings.
//
// The file has one recognized top-level table:
//
//	[aliases]
//	gs = "git status"
//	co = "git checkout $1"
//
// Every CLI invocation is a fresh process, so there is no caching: the
// store is reloaded from disk each time and rewritten after every
// mutation. Writes go through an atomic temp-file-and-rename so an
// interrupted save never corrupts the previous contents. There is no
// cross-process locking; concurrent mutating invocations race with
// last-writer-wins semantics.
package config
