package fsutil

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/binstash/pkg/errors"
)

// RemoveTree removes path and everything below it. Unlike plain os.RemoveAll
// it copes with read-only directories left by MakeTreeEntriesReadOnly:
// write permission is restored on every directory first, so hardened trees
// can always be cleared. A missing path is not an error.
func RemoveTree(path string) error {
	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return os.Chmod(p, info.Mode().Perm()|DirModePrivate)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to restore write permissions under %s", path)
	}
	return os.RemoveAll(path)
}

// MakeTreeEntriesReadOnly recursively makes every entry inside folder
// read-only by stripping the write permission bits. The permissions of folder
// itself are left untouched so the caller can still rename or remove it
// during cache bookkeeping. Symlinks are never followed and their own
// permissions are never changed. Directories are processed depth-first so
// children are hardened before the directory entry itself.
//
// folder must be an existing directory.
func MakeTreeEntriesReadOnly(folder string) error {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return errors.Wrapf(err, "failed to read directory %s", folder)
	}

	for _, entry := range entries {
		path := filepath.Join(folder, entry.Name())

		// Lstat so a symlink is judged on the link itself, not its target.
		info, err := os.Lstat(path)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", path)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}
		if info.IsDir() {
			if err := MakeTreeEntriesReadOnly(path); err != nil {
				return err
			}
		}

		if err := os.Chmod(path, info.Mode().Perm()&^WriteBits); err != nil {
			return errors.Wrapf(err, "failed to make %s read-only", path)
		}
	}

	return nil
}
