// Package lock provides the cooperative, filesystem-backed mutual exclusion
// used to coordinate cache writers across independent processes.
package lock

import (
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/glorpus-work/binstash/pkg/errors"
	"github.com/glorpus-work/binstash/pkg/fsutil"
)

// FileLock is a cooperative mutual-exclusion primitive keyed by a filesystem
// path. Lock blocks until the lock is acquired; callers wanting a timeout
// must wrap the call externally.
type FileLock interface {
	Lock() error
	Unlock() error
	Path() string
}

// ShardLock guards one two-hex-digit cache shard. It is backed by an OS
// advisory lock, so a holder crashing releases the lock automatically - no
// stale-lock cleanup is needed.
type ShardLock struct {
	fl *flock.Flock
}

// NewShardLock returns the lock for the shard whose lock metadata lives in
// locksDir, creating the directory if necessary.
func NewShardLock(locksDir string) (*ShardLock, error) {
	if err := fsutil.EnsureDir(locksDir); err != nil {
		return nil, errors.Wrapf(err, "failed to create lock directory %s", locksDir)
	}
	return &ShardLock{fl: flock.New(filepath.Join(locksDir, "shard.lock"))}, nil
}

// Lock blocks until exclusive access to the shard is acquired.
func (l *ShardLock) Lock() error {
	return errors.Wrapf(l.fl.Lock(), "failed to lock %s", l.fl.Path())
}

// Unlock releases the shard.
func (l *ShardLock) Unlock() error {
	return errors.Wrapf(l.fl.Unlock(), "failed to unlock %s", l.fl.Path())
}

// Path returns the path of the underlying lock file.
func (l *ShardLock) Path() string {
	return l.fl.Path()
}
