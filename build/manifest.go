package build

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// ManifestFile is the output path of the build manifest.
const ManifestFile = "manifest.json"

// Manifest lists the files of a complete build with their fingerprints.
// Deploys compare it with the manifest of the live site and upload only the
// files whose fingerprint changed.
type Manifest struct {
	BuildID string          `json:"buildId"`
	Files   []ManifestEntry `json:"files"`
}

// ManifestEntry describes one output file.
type ManifestEntry struct {
	Path string `json:"path"`
	Size int    `json:"size"`

	// Hash is the xxHash64 digest of the file content in hex.
	Hash string `json:"xxhash"`
}

// newManifestEntry fingerprints the content of an output file.
func newManifestEntry(path string, data []byte) ManifestEntry {
	return ManifestEntry{
		Path: path,
		Size: len(data),
		Hash: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}
}

// writeManifest writes the manifest, entries sorted by path.
func (b *Builder) writeManifest(ctx context.Context, buildID string, entries []ManifestEntry) error {
	slices.SortFunc(entries, func(a, b ManifestEntry) int {
		return cmp.Compare(a.Path, b.Path)
	})

	data, err := encode(&Manifest{BuildID: buildID, Files: entries})
	if err != nil {
		return err
	}
	if _, err := b.Output.WriteFile(ctx, ManifestFile, data); err != nil {
		return fmt.Errorf("%s: %w", ManifestFile, err)
	}
	return nil
}
