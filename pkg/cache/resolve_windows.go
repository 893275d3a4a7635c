//go:build !unix

package cache

// safeCacheDir returns candidate unchanged. Windows has no uid-based
// ownership model comparable to Unix, and %LOCALAPPDATA% does not suffer the
// sudo/$HOME mismatch the Unix check guards against.
func safeCacheDir(candidate string) string {
	return candidate
}
