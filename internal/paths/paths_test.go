package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "a", "b", "c")

		if err := EnsureDir(target, 0); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}

		info, err := os.Stat(target)
		if err != nil {
			t.Fatal(err)
		}
		if !info.IsDir() {
			t.Error("expected a directory")
		}
	})

	t.Run("idempotent on existing directory", func(t *testing.T) {
		dir := t.TempDir()

		if err := EnsureDir(dir, 0); err != nil {
			t.Errorf("EnsureDir() on existing dir error = %v", err)
		}
	})

	t.Run("applies default permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits not meaningful on windows")
		}
		dir := t.TempDir()
		target := filepath.Join(dir, "perms")

		if err := EnsureDir(target, 0); err != nil {
			t.Fatal(err)
		}

		info, err := os.Stat(target)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != DefaultDirPerm {
			t.Errorf("perm = %o, want %o", info.Mode().Perm(), os.FileMode(DefaultDirPerm))
		}
	})
}

func TestShimDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".pintas", "shims")
	if got := ShimDir(); got != want {
		t.Errorf("ShimDir() = %q, want %q", got, want)
	}
}

func TestPintasHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".pintas")
	if got := PintasHome(); got != want {
		t.Errorf("PintasHome() = %q, want %q", got, want)
	}
}

func TestConfigFile(t *testing.T) {
	if got := ConfigFile(); got != ConfigFilename {
		t.Errorf("ConfigFile() = %q, want %q", got, ConfigFilename)
	}
}
