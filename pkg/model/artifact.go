// Package model provides the data structures describing artifacts and the
// manifests that reference them.
package model

import (
	"fmt"
)

// ProviderConfig is the opaque, provider-specific configuration blob carried
// by an artifact entry. Each provider implementation decodes only the fields
// it understands.
type ProviderConfig map[string]interface{}

// ArtifactEntry describes one content-addressed artifact: how to recognize
// it (hash, size) and how to fetch it (provider selector plus config).
type ArtifactEntry struct {
	Name           string         `json:"-"`
	Hash           string         `json:"hash"`
	Size           int64          `json:"size"`
	Format         string         `json:"format,omitempty"`
	Path           string         `json:"path,omitempty"`
	Provider       string         `json:"provider"`
	ProviderConfig ProviderConfig `json:"config,omitempty"`
}

// HashPrefix returns the first two hex digits of the artifact hash, used as
// the shard directory name under the cache root.
func (e *ArtifactEntry) HashPrefix() string {
	return e.Hash[:2]
}

// Validate checks the structural invariants of the entry.
func (e *ArtifactEntry) Validate() error {
	// More than two characters: the first two form the shard directory and
	// the rest the artifact directory, which must not collapse onto the shard.
	if len(e.Hash) <= 2 || !isLowerHex(e.Hash) {
		return fmt.Errorf("artifact %q: hash must be a lowercase hex string of more than two characters", e.Name)
	}
	if e.Size < 0 {
		return fmt.Errorf("artifact %q: size cannot be negative", e.Name)
	}
	if e.Provider == "" {
		return fmt.Errorf("artifact %q: provider cannot be empty", e.Name)
	}
	return nil
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
