package cache

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/binstash/pkg/errors"
)

func populateCache(t *testing.T, c *Cache) {
	t.Helper()

	shard := filepath.Join(c.ArtifactsDir(), "ab")
	require.NoError(t, os.MkdirAll(shard, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(shard, "artifact"), []byte("artifact data"), 0o644))

	locks := c.LocksDir("ab")
	require.NoError(t, os.MkdirAll(locks, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locks, "ab.lock"), []byte("lock"), 0o644))
}

func TestClean_LocksOnly(t *testing.T) {
	c := New(t.TempDir())
	populateCache(t, c)

	result, err := c.Clean(CleanOptions{Locks: true})
	require.NoError(t, err)

	assert.Positive(t, result.LockFreed)
	assert.Zero(t, result.ArtifactFreed)

	// Artifact content survives a lock clean.
	assert.FileExists(t, filepath.Join(c.ArtifactsDir(), "ab", "artifact"))
	assert.NoDirExists(t, filepath.Join(c.Dir(), "locks"))
}

func TestClean_ArtifactsOnly(t *testing.T) {
	c := New(t.TempDir())
	populateCache(t, c)

	result, err := c.Clean(CleanOptions{Artifacts: true})
	require.NoError(t, err)

	assert.Positive(t, result.ArtifactFreed)
	assert.NoDirExists(t, filepath.Join(c.ArtifactsDir(), "ab"))
	assert.FileExists(t, filepath.Join(c.LocksDir("ab"), "ab.lock"))
}

func TestClean_DefaultsToAll(t *testing.T) {
	c := New(t.TempDir())
	populateCache(t, c)

	result, err := c.Clean(CleanOptions{})
	require.NoError(t, err)

	assert.Positive(t, result.TotalFreed)
	assert.NoDirExists(t, filepath.Join(c.ArtifactsDir(), "ab"))
	assert.NoDirExists(t, filepath.Join(c.Dir(), "locks"))
}

func TestClean_HardenedArtifacts(t *testing.T) {
	// Cleaning must cope with read-only directories left by hardening.
	c := New(t.TempDir())
	shard := filepath.Join(c.ArtifactsDir(), "cd")
	sub := filepath.Join(shard, "tree")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "bin"), []byte("exe"), 0o755))
	require.NoError(t, os.Chmod(filepath.Join(sub, "bin"), 0o555))
	require.NoError(t, os.Chmod(sub, 0o555))

	_, err := c.Clean(CleanOptions{Artifacts: true})
	require.NoError(t, err)
	assert.NoDirExists(t, shard)
}

func TestClean_FailureWrapsSentinel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root: permission bits are not enforced")
	}

	// An unreadable shard makes the size accounting fail.
	c := New(t.TempDir())
	shard := filepath.Join(c.ArtifactsDir(), "ab")
	require.NoError(t, os.MkdirAll(shard, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(shard, "artifact"), []byte("x"), 0o644))
	require.NoError(t, os.Chmod(shard, 0o000))
	t.Cleanup(func() { _ = os.Chmod(shard, 0o755) })

	_, err := c.Clean(CleanOptions{Artifacts: true})
	assert.ErrorIs(t, err, errors.ErrCacheClean)
}

func TestGetInfo(t *testing.T) {
	c := New(t.TempDir())
	populateCache(t, c)

	info, err := c.GetInfo()
	require.NoError(t, err)

	assert.Equal(t, c.Dir(), info.Directory)
	assert.Equal(t, int64(len("artifact data")), info.ArtifactSize)
	assert.Equal(t, 1, info.ArtifactFiles)
	assert.Equal(t, 1, info.LockFiles)
}

func TestGetInfo_EmptyCache(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "never-created"))

	info, err := c.GetInfo()
	require.NoError(t, err)
	assert.Zero(t, info.TotalSize)
	assert.Zero(t, info.ArtifactFiles)
}
