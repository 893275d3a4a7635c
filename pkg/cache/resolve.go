package cache

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/binstash/pkg/errors"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "binstash"

	// CacheEnvVar overrides the cache root when set. Its value is used
	// verbatim with no further checks - an explicit escape hatch for the
	// operator.
	CacheEnvVar = "BINSTASH_CACHE"
)

// Resolve returns the directory where binstash should keep its cached
// artifacts. The result is constant for fixed environment and filesystem
// state; callers should resolve once per process and thread the value
// through as a Cache.
//
// Resolution order:
//  1. $BINSTASH_CACHE, verbatim, if set.
//  2. The platform cache directory (os.UserCacheDir) plus "binstash". On
//     Unix this candidate is only used when it is safe to own (see
//     resolve_unix.go); otherwise a per-uid directory under the temp dir is
//     used instead, so a sudo-style run whose $HOME still points at the
//     invoking user's home never shares a cache owned by another identity.
//
// If no user cache directory can be determined at all the error wraps
// errors.ErrNoCacheRoot; there is no sane default and the caller is expected
// to abort with a message naming $BINSTASH_CACHE.
func Resolve() (string, error) {
	if dir := os.Getenv(CacheEnvVar); dir != "" {
		return dir, nil
	}

	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrNoCacheRoot, err.Error())
	}

	return safeCacheDir(filepath.Join(userCacheDir, AppName)), nil
}
