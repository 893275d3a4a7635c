// Package orchestrator ties cache layout, shard locking, fetch providers and
// post-fetch hardening together to materialize artifacts on demand.
package orchestrator

import (
	"context"
	"os"
	"path/filepath"

	"github.com/glorpus-work/binstash/internal/logger"
	"github.com/glorpus-work/binstash/pkg/cache"
	"github.com/glorpus-work/binstash/pkg/errors"
	"github.com/glorpus-work/binstash/pkg/fsutil"
	"github.com/glorpus-work/binstash/pkg/lock"
	"github.com/glorpus-work/binstash/pkg/model"
)

// Orchestrator materializes manifest entries into the cache.
type Orchestrator struct {
	Cache     *cache.Cache
	Providers ProviderResolver
	Extractor Extractor
	Hooks     Hooks // Hooks for progress and event notifications
}

// EnsureArtifact makes sure the artifact described by entry is present in
// the cache and returns its directory. The common case of a cache hit never
// touches the lock machinery; a miss acquires the shard lock, fetches via
// the entry's provider, optionally extracts, hardens the resulting tree and
// only then publishes it under its final path.
func (o *Orchestrator) EnsureArtifact(ctx context.Context, entry *model.ArtifactEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}

	artifactDir := o.artifactDir(entry)
	if dirExists(artifactDir) {
		logger.Debugf("cache hit for %s", entry.Name)
		return artifactDir, nil
	}

	prefix := entry.HashPrefix()
	emit(o.Hooks, Event{Phase: "locking", ID: entry.Name, Msg: prefix})
	shardLock, err := lock.NewShardLock(o.Cache.LocksDir(prefix))
	if err != nil {
		return "", err
	}
	if err := shardLock.Lock(); err != nil {
		return "", err
	}
	defer func() { _ = shardLock.Unlock() }()

	// Another process may have fetched this artifact while we waited.
	if dirExists(artifactDir) {
		logger.Debugf("artifact %s appeared while waiting for the shard lock", entry.Name)
		return artifactDir, nil
	}

	if err := o.fetchLocked(ctx, entry, artifactDir, shardLock); err != nil {
		emit(o.Hooks, Event{Phase: "error", ID: entry.Name, Msg: err.Error()})
		return "", err
	}

	emit(o.Hooks, Event{Phase: "done", ID: entry.Name})
	return artifactDir, nil
}

// ExecutablePath returns the path of the artifact's entry point inside
// artifactDir.
func (o *Orchestrator) ExecutablePath(artifactDir string, entry *model.ArtifactEntry) string {
	name := entry.Path
	if name == "" {
		name = entry.Name
	}
	return filepath.Join(artifactDir, name)
}

// fetchLocked populates artifactDir. The caller must hold the shard lock.
// The artifact is staged next to its final path and renamed into place after
// hardening, so a crash mid-fetch never publishes a partial tree.
func (o *Orchestrator) fetchLocked(ctx context.Context, entry *model.ArtifactEntry, artifactDir string, shardLock lock.FileLock) error {
	prov, err := o.Providers.Get(entry.Provider)
	if err != nil {
		return err
	}

	// A crash after hardening can leave a read-only staging tree behind;
	// fsutil.RemoveTree clears it where os.RemoveAll would fail.
	stagingDir := artifactDir + ".tmp"
	if err := fsutil.RemoveTree(stagingDir); err != nil {
		return errors.Wrapf(err, "failed to clear staging directory %s", stagingDir)
	}
	success := false
	defer func() {
		if !success {
			_ = fsutil.RemoveTree(stagingDir)
		}
	}()

	emit(o.Hooks, Event{Phase: "fetching", ID: entry.Name})
	if entry.Format == "" {
		destination := filepath.Join(stagingDir, entryFileName(entry))
		if err := prov.FetchArtifact(ctx, entry.ProviderConfig, destination, shardLock, entry); err != nil {
			return err
		}
	} else {
		archivePath := stagingDir + ".fetch"
		defer func() { _ = os.Remove(archivePath) }()
		if err := prov.FetchArtifact(ctx, entry.ProviderConfig, archivePath, shardLock, entry); err != nil {
			return err
		}

		emit(o.Hooks, Event{Phase: "extracting", ID: entry.Name})
		if o.Extractor == nil {
			return errors.Wrapf(errors.ErrFetchFailed, "artifact %s declares format %q but no extractor is configured", entry.Name, entry.Format)
		}
		if err := o.Extractor.ExtractAll(ctx, archivePath, stagingDir); err != nil {
			return errors.Wrapf(err, "failed to extract %s", entry.Name)
		}
	}

	emit(o.Hooks, Event{Phase: "hardening", ID: entry.Name})
	if err := fsutil.MakeTreeEntriesReadOnly(stagingDir); err != nil {
		return err
	}

	if err := os.Rename(stagingDir, artifactDir); err != nil {
		return errors.Wrapf(err, "failed to publish artifact %s", entry.Name)
	}
	success = true
	return nil
}

// artifactDir is <root>/<two-hex-prefix>/<rest-of-hash>. Splitting the hash
// keeps the path short without losing uniqueness.
func (o *Orchestrator) artifactDir(entry *model.ArtifactEntry) string {
	return filepath.Join(o.Cache.ArtifactsDir(), entry.HashPrefix(), entry.Hash[2:])
}

func entryFileName(entry *model.ArtifactEntry) string {
	if entry.Path != "" {
		return entry.Path
	}
	return entry.Name
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
