//go:build unix

package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
)

// safeCacheDir returns candidate when it is safe to own, and a per-uid
// directory under the temp dir otherwise.
//
// os.UserCacheDir relies on $HOME (via $XDG_CACHE_HOME or directly). Under
// sudo, $HOME may still be the invoking user's home while the effective user
// is root. Falling back to e.g. /tmp/binstash-0 avoids a privileged run
// owning a cache inside some other user's home.
func safeCacheDir(candidate string) string {
	if isSafeToOwn(candidate) {
		return candidate
	}
	return filepath.Join(os.TempDir(), AppName+"-"+strconv.Itoa(os.Geteuid()))
}

// isSafeToOwn reports whether path either exists and is owned by the current
// effective user, or does not exist and the nearest existing ancestor is
// owned by the current effective user.
//
// Lstat is used instead of Stat: a broken symlink at path still has an owner
// worth checking, and a malicious symlink must not redirect the check to its
// target. Any ambiguity (permission denied, unexpected I/O error, no
// resolvable ancestor) fails closed.
func isSafeToOwn(path string) bool {
	for p := path; ; {
		info, err := os.Lstat(p)
		switch {
		case err == nil:
			stat, ok := info.Sys().(*syscall.Stat_t)
			return ok && stat.Uid == uint32(os.Geteuid())
		case errors.Is(err, fs.ErrNotExist):
			// Keep walking up.
		case errors.Is(err, syscall.ENOTDIR):
			// A file is sitting where a directory component should be.
			// That is not a trust signal either way; keep walking up.
		default:
			// Permission denied or anything else unexpected.
			return false
		}

		parent := filepath.Dir(p)
		if parent == p {
			return false
		}
		p = parent
	}
}
