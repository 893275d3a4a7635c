package orchestrator

import (
	"context"

	"github.com/glorpus-work/binstash/pkg/provider"
)

// ProviderResolver is the subset of the provider registry used by the
// orchestrator.
type ProviderResolver interface {
	Get(tag string) (provider.Provider, error)
}

// Extractor unpacks a downloaded archive into a directory.
type Extractor interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // locking|fetching|extracting|hardening|done|error
	ID    string // artifact name
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}
