package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/.config/bugtrace")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config/bugtrace"), expanded)

	expanded, err = ExpandPath("/var/log")
	require.NoError(t, err)
	require.Equal(t, "/var/log", expanded)
}

func TestCreateDirectoryIfNotExist(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "a", "b", "tmp")
	for i := 0; i < 3; i++ {
		require.NoError(t, CreateDirectoryIfNotExist(directory))
	}
	ok, err := DirectoryExists(directory)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestExists(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "debug.log")

	ok, err := Exists(path)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	ok, err = Exists(path)
	require.NoError(t, err)
	require.True(t, ok)

	// A directory is not a file.
	ok, err = Exists(directory)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNonEmpty(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "debug.log")

	ok, err := NonEmpty(path)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	ok, err = NonEmpty(path)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))
	ok, err = NonEmpty(path)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = NonEmpty(directory)
	require.NoError(t, err)
	require.False(t, ok)
}
