package shim

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pintas-sh/pintas/internal/config"
)

func newStore(aliases map[string]string) *config.Config {
	cfg := config.New()
	for k, v := range aliases {
		cfg.Aliases[k] = v
	}
	return cfg
}

func TestScript(t *testing.T) {
	got := Script("/usr/local/bin/pintas", "x")
	want := "#!/bin/sh\nexec \"/usr/local/bin/pintas\" run --internal x \"$@\"\n"
	assert.Equal(t, want, got)
}

func TestSync_CreatesShimPerAlias(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shims")
	cfg := newStore(map[string]string{"x": "echo hi", "y": "echo bye"})

	require.NoError(t, Sync(dir, "/opt/pintas", cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	body, err := os.ReadFile(filepath.Join(dir, "x"))
	require.NoError(t, err)
	assert.Equal(t, Script("/opt/pintas", "x"), string(body))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "x"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(ScriptPerm), info.Mode().Perm(), "shim must be executable")
	}
}

func TestSync_RemovesStaleFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "y"), []byte("stale"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated"), []byte("junk"), 0644))

	cfg := newStore(map[string]string{"x": "echo hi"})

	require.NoError(t, Sync(dir, "/opt/pintas", cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "stale files must be wiped")
	assert.Equal(t, "x", entries[0].Name())
}

func TestSync_LeavesSubdirectoriesAlone(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "keepme"), 0755))

	require.NoError(t, Sync(dir, "/opt/pintas", newStore(nil)))

	info, err := os.Stat(filepath.Join(dir, "keepme"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSync_EmptyStoreYieldsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, fmt.Sprintf("old%d", i))
		require.NoError(t, os.WriteFile(name, []byte("old"), 0755))
	}

	require.NoError(t, Sync(dir, "/opt/pintas", newStore(nil)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSync_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shims")
	cfg := newStore(map[string]string{"x": "echo hi"})

	require.NoError(t, Sync(dir, "/opt/pintas", cfg))
	require.NoError(t, Sync(dir, "/opt/pintas", cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSync_ShimIsRunnable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX sh")
	}

	dir := t.TempDir()
	// Point the shim at /bin/echo so executing it proves the exec line works.
	cfg := newStore(map[string]string{"x": "ignored"})
	require.NoError(t, Sync(dir, "/bin/echo", cfg))

	out, err := execShim(filepath.Join(dir, "x"), "extra")
	require.NoError(t, err)
	assert.Equal(t, "run --internal x extra", out)
}

func execShim(path string, args ...string) (string, error) {
	out, err := exec.Command(path, args...).Output()
	return strings.TrimSpace(string(out)), err
}
