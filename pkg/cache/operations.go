package cache

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/binstash/pkg/errors"
	"github.com/glorpus-work/binstash/pkg/fsutil"
)

// CleanOptions specifies what to clean from the cache.
type CleanOptions struct {
	All       bool
	Locks     bool
	Artifacts bool
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	TotalFreed    int64
	LockFreed     int64
	ArtifactFreed int64
}

// Info represents cache information.
type Info struct {
	Directory     string
	TotalSize     int64
	ArtifactSize  int64
	ArtifactFiles int
	LockFiles     int
}

// Clean removes cached data according to the specified options. The locks/
// subtree is disjoint from the artifact shards, so cleaning locks never
// touches cached artifact content and vice versa.
func (c *Cache) Clean(options CleanOptions) (*CleanResult, error) {
	result := &CleanResult{}

	// Default to cleaning everything if no specific flags are set.
	if !options.Locks && !options.Artifacts {
		options.All = true
	}

	if options.All || options.Locks {
		size, err := removeDir(filepath.Join(c.dir, "locks"))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
		}
		result.LockFreed = size
		result.TotalFreed += size
	}

	if options.All || options.Artifacts {
		shards, err := c.shardDirs()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
		}
		for _, shard := range shards {
			size, err := removeDir(shard)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
			}
			result.ArtifactFreed += size
			result.TotalFreed += size
		}
	}

	return result, nil
}

// GetInfo returns size and file-count information about the cache.
func (c *Cache) GetInfo() (*Info, error) {
	info := &Info{Directory: c.dir}

	shards, err := c.shardDirs()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheInfo, err.Error())
	}
	for _, shard := range shards {
		size, count, err := dirSizeAndFiles(shard)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCacheInfo, err.Error())
		}
		info.ArtifactSize += size
		info.ArtifactFiles += count
	}

	_, lockFiles, err := dirSizeAndFiles(filepath.Join(c.dir, "locks"))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheInfo, err.Error())
	}
	info.LockFiles = lockFiles
	info.TotalSize = info.ArtifactSize

	return info, nil
}

// shardDirs lists the two-hex-digit artifact shard directories directly
// beneath the cache root.
func (c *Cache) shardDirs() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var shards []string
	for _, entry := range entries {
		if entry.IsDir() && isHashPrefix(entry.Name()) {
			shards = append(shards, filepath.Join(c.dir, entry.Name()))
		}
	}
	return shards, nil
}

// isHashPrefix reports whether name is exactly two lowercase hex digits.
func isHashPrefix(name string) bool {
	if len(name) != 2 {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// removeDir removes dir recursively and returns the bytes freed. Hardened
// artifact trees have read-only directories, which fsutil.RemoveTree copes
// with.
func removeDir(dir string) (int64, error) {
	size, _, err := dirSizeAndFiles(dir)
	if err != nil {
		return 0, err
	}
	if err := fsutil.RemoveTree(dir); err != nil {
		return 0, err
	}
	return size, nil
}

// dirSizeAndFiles calculates directory size and file count. A missing
// directory yields zeroes.
func dirSizeAndFiles(dir string) (size int64, count int, err error) {
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.Walk(dir, func(_ string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			size += info.Size()
			count++
		}
		return nil
	})
	return size, count, err
}
