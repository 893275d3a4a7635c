// Package errors defines the sentinel errors shared across binstash and
// small helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Cache root errors.
	ErrNoCacheRoot = fmt.Errorf("could not determine a cache root - set $BINSTASH_CACHE")

	// Provider errors.
	ErrProviderConfig  = fmt.Errorf("invalid provider config")
	ErrUnknownProvider = fmt.Errorf("unknown provider")
	ErrFetchFailed     = fmt.Errorf("fetch failed")

	// Download errors.
	ErrInvalidPath      = fmt.Errorf("invalid path")
	ErrFileHashMismatch = fmt.Errorf("file hash mismatch")

	// Manifest errors.
	ErrManifestParse   = fmt.Errorf("failed to parse manifest")
	ErrArtifactMissing = fmt.Errorf("artifact not found in manifest")
	ErrVersionTooOld   = fmt.Errorf("manifest requires a newer binstash version")

	// Cache maintenance errors.
	ErrCacheClean = fmt.Errorf("failed to clean cache")
	ErrCacheInfo  = fmt.Errorf("failed to get cache info")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
