//go:generate mockgen -destination=mocks/provider.go . Provider

// Package provider defines the pluggable fetch-provider contract by which a
// remote artifact is retrieved into the local cache, and the registry that
// selects among implementations.
package provider

import (
	"context"

	"github.com/glorpus-work/binstash/pkg/lock"
	"github.com/glorpus-work/binstash/pkg/model"
)

// Provider fetches the bytes identified by a provider-specific config into a
// destination path. Implementations are selected by the provider tag on an
// artifact entry; new providers plug in without changes to the locking or
// layout logic.
type Provider interface {
	// FetchArtifact retrieves the artifact described by entry into
	// destination. On success destination contains exactly the fetched
	// content; on failure no partial file is left there.
	//
	// fetchLock is evidence that the caller already holds exclusive access
	// to the artifact's cache shard. The provider neither acquires nor
	// releases it.
	FetchArtifact(ctx context.Context, providerConfig model.ProviderConfig, destination string, fetchLock lock.FileLock, entry *model.ArtifactEntry) error
}
