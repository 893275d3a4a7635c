//go:generate mockgen -destination=mocks/download.go . Manager
package download

import (
	"context"
	"net/url"
)

// Manager is the transfer mechanism behind the fetch providers: given a URL
// and a destination path it produces the transferred bytes at that path or
// fails with context. On failure no partial file is left at the destination.
type Manager interface {
	// FetchInto downloads item to exactly the given destination path.
	FetchInto(ctx context.Context, item Item, destination string, fctx FetchContext) error
}

// Item represents one remote resource to download.
type Item struct {
	URL      *url.URL // source URL to download
	Checksum string   // optional hex-encoded SHA-256 checksum; if provided, will be verified
}

// FetchContext carries presentation metadata for a transfer.
type FetchContext struct {
	Name          string // display name for logs, typically the URL
	ContentLength int64  // expected size in bytes; 0 when unknown
	ShowProgress  bool   // enables progress logging during the transfer
}
