// Package cache implements the on-disk layout of the binstash artifact cache
// and the resolution of the cache root directory.
package cache

import "path/filepath"

// The cache is organized as follows:
//   - Any subfolder whose name is two lowercase hex digits holds the
//     artifacts whose content hash starts with those two digits.
//   - The only other subfolder is locks/, which mirrors the same two-digit
//     sharding for lock metadata.
//
// Sharding artifacts directly under the root keeps artifact paths as short as
// reasonably possible to avoid exceeding MAX_PATH on Windows. The locks/
// subtree is kept disjoint from the artifact shards so it can be blown away
// independently of cached content.

// Cache describes the layout of a binstash cache rooted at a fixed directory.
// It performs pure path arithmetic and no I/O; the value is immutable and
// safe to share.
type Cache struct {
	dir string
}

// New returns a Cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// NewDefault resolves the cache root for this process (see Resolve) and
// returns a Cache rooted there.
func NewDefault() (*Cache, error) {
	dir, err := Resolve()
	if err != nil {
		return nil, err
	}
	return New(dir), nil
}

// Dir returns the cache root directory.
func (c *Cache) Dir() string {
	return c.dir
}

// ArtifactsDir returns the directory under which artifact shards live. This
// is the cache root itself: artifacts are sharded directly beneath it.
func (c *Cache) ArtifactsDir() string {
	return c.dir
}

// LocksDir returns the lock directory for the given artifact hash prefix.
// hashPrefix must be two lowercase hex digits.
func (c *Cache) LocksDir(hashPrefix string) string {
	return filepath.Join(c.dir, "locks", hashPrefix)
}
