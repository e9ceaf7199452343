package repositories

import (
	"context"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
)

// ManifestRepository abstracts the filesystem the audit reads from.
type ManifestRepository interface {
	// Locate returns every manifest found under root, recursively.
	// A missing root yields no manifests and no error.
	Locate(ctx context.Context, root string) ([]entities.ManifestPath, error)

	// Collect returns the allow-listed source files under the manifest's
	// directory, relative to that directory.
	Collect(ctx context.Context, manifest entities.ManifestPath) ([]entities.SourceFileRef, error)

	// Read loads the manifest text. It fails with entities.ErrManifestUnreadable
	// or entities.ErrManifestEmpty.
	Read(manifest entities.ManifestPath) (entities.ManifestContent, error)
}
