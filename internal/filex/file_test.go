package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "data.json")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Join(tmp, "a", "b"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("data.json"))
}

func TestEnsureParentDir_FailsIfFileBlocksPath(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blocker"), []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(tmp, "blocker", "data.json"))
	require.Error(t, err)
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "f.json")

	require.NoError(t, WriteFile(path, []byte("first"), 0o600))
	require.NoError(t, WriteFile(path, []byte("2nd"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2nd", string(got))
	require.True(t, Exists(path))
}

func TestWriteFileAtomic_ReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.json")

	require.NoError(t, WriteFileAtomic(path, []byte("old"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestExists(t *testing.T) {
	require.False(t, Exists(filepath.Join(t.TempDir(), "missing")))
}
