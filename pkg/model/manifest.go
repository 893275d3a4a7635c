package model

import (
	"encoding/json"
	"fmt"
	"os"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/binstash/pkg/errors"
)

// Manifest maps artifact names to their entries. MinVersion, when set, names
// the oldest binstash release able to process the manifest.
type Manifest struct {
	MinVersion string                    `json:"min_version,omitempty"`
	Artifacts  map[string]*ArtifactEntry `json:"artifacts"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrManifestParse, err.Error())
	}

	for name, entry := range m.Artifacts {
		if entry == nil {
			return nil, errors.Wrapf(errors.ErrManifestParse, "artifact %q has no body", name)
		}
		entry.Name = name
		if err := entry.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrManifestParse, err.Error())
		}
	}

	return &m, nil
}

// Get returns the entry for the named artifact.
func (m *Manifest) Get(name string) (*ArtifactEntry, error) {
	entry, ok := m.Artifacts[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrArtifactMissing, "%s", name)
	}
	return entry, nil
}

// CheckVersion verifies that current satisfies the manifest's MinVersion
// requirement. A manifest without MinVersion accepts every release.
func (m *Manifest) CheckVersion(current string) error {
	if m.MinVersion == "" {
		return nil
	}

	minimum, err := version.NewVersion(m.MinVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrManifestParse, "invalid min_version %q", m.MinVersion)
	}
	cur, err := version.NewVersion(current)
	if err != nil {
		return fmt.Errorf("invalid binstash version %q: %w", current, err)
	}

	if cur.LessThan(minimum) {
		return errors.Wrapf(errors.ErrVersionTooOld, "need at least %s, running %s", minimum, cur)
	}
	return nil
}
