// SPDX-License-Identifier: MPL-2.0

package materialize

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Artifact is one produced archive: its format, the classifier that
// distinguishes it from sibling artifacts, and the file it was written to.
type Artifact struct {
	Format     string `toml:"format"`
	Classifier string `toml:"classifier"`
	Path       string `toml:"path"`
	Size       int64  `toml:"size"`
}

// Attacher registers produced artifacts with the surrounding build
// tooling. One Attach call is made per archive, after the archive has been
// written successfully.
type Attacher interface {
	Attach(a Artifact) error
}

// ManifestAttacher collects attachments and writes them as a TOML manifest
// next to the archives, the file-based equivalent of a build tool's
// artifact registry.
type ManifestAttacher struct {
	// Path is where Write places the manifest.
	Path string

	artifacts []Artifact
}

// Attach records the artifact, filling in its on-disk size.
func (m *ManifestAttacher) Attach(a Artifact) error {
	if info, err := os.Stat(a.Path); err == nil {
		a.Size = info.Size()
	}
	m.artifacts = append(m.artifacts, a)
	return nil
}

// Artifacts returns the attachments recorded so far, in attach order.
func (m *ManifestAttacher) Artifacts() []Artifact {
	return m.artifacts
}

// Write persists the manifest. Call once, after a completed run.
func (m *ManifestAttacher) Write() error {
	doc := struct {
		Artifacts []Artifact `toml:"artifact"`
	}{Artifacts: m.artifacts}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode artifact manifest: %w", err)
	}
	if err := os.WriteFile(m.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact manifest: %w", err)
	}
	return nil
}
