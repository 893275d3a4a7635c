package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTreeEntriesReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}

	root := t.TempDir()
	require.NoError(t, os.Chmod(root, 0o755))

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	nested := filepath.Join(sub, "nested.txt")
	require.NoError(t, os.WriteFile(nested, []byte("nested"), 0o644))

	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink("file.txt", link))

	require.NoError(t, MakeTreeEntriesReadOnly(root))

	fileInfo, err := os.Lstat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o444), fileInfo.Mode().Perm())

	nestedInfo, err := os.Lstat(nested)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o444), nestedInfo.Mode().Perm())

	subInfo, err := os.Lstat(sub)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o555), subInfo.Mode().Perm())

	// The folder itself must keep its permissions.
	rootInfo, err := os.Lstat(root)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), rootInfo.Mode().Perm())

	// The symlink must survive untouched and still point at its target.
	linkInfo, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linkInfo.Mode()&os.ModeSymlink)

	// Restore write bits so t.TempDir cleanup can remove everything.
	t.Cleanup(func() {
		_ = os.Chmod(sub, 0o755)
		_ = os.Chmod(file, 0o644)
		_ = os.Chmod(nested, 0o644)
	})
}

func TestRemoveTree_HardenedTree(t *testing.T) {
	// A hardened tree has read-only subdirectories that plain os.RemoveAll
	// cannot delete from.
	root := t.TempDir()
	target := filepath.Join(root, "tree")
	sub := filepath.Join(target, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "f"), []byte("x"), 0o644))
	require.NoError(t, MakeTreeEntriesReadOnly(target))

	require.NoError(t, RemoveTree(target))
	assert.NoDirExists(t, target)
}

func TestRemoveTree_MissingPath(t *testing.T) {
	assert.NoError(t, RemoveTree(filepath.Join(t.TempDir(), "absent")))
}

func TestMakeTreeEntriesReadOnly_EmptyDir(t *testing.T) {
	assert.NoError(t, MakeTreeEntriesReadOnly(t.TempDir()))
}

func TestMakeTreeEntriesReadOnly_MissingDir(t *testing.T) {
	err := MakeTreeEntriesReadOnly(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
