package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
	"github.com/rios0rios0/cmakeaudit/internal/domain/repositories"
)

// ManifestRepository reads manifests and source trees from the local disk.
// Symlinked directories are not followed.
type ManifestRepository struct {
	settings *entities.Settings
}

var _ repositories.ManifestRepository = (*ManifestRepository)(nil)

// NewManifestRepository creates a new filesystem ManifestRepository.
func NewManifestRepository(settings *entities.Settings) *ManifestRepository {
	return &ManifestRepository{settings: settings}
}

// Locate walks root and returns the absolute path of every manifest, in
// lexical walk order. A symlinked root is resolved first; symlinks below it
// are not followed. Inaccessible subdirectories are logged and skipped.
func (it *ManifestRepository) Locate(ctx context.Context, root string) ([]entities.ManifestPath, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	resolved, evalErr := filepath.EvalSymlinks(absRoot)
	if evalErr != nil {
		logger.Warnf("Cannot scan %q: %v", root, evalErr)
		return nil, nil
	}
	absRoot = resolved

	info, statErr := os.Stat(absRoot)
	if statErr != nil {
		logger.Warnf("Cannot scan %q: %v", root, statErr)
		return nil, nil
	}
	if !info.IsDir() {
		logger.Warnf("Cannot scan %q: not a directory", root)
		return nil, nil
	}

	var manifests []entities.ManifestPath
	walkErr := filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return skipUnreadable(path, entry, err)
		}
		if !entry.IsDir() && entry.Name() == it.settings.ManifestName {
			manifests = append(manifests, entities.ManifestPath(path))
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return manifests, nil
}

// Collect walks the manifest's directory and returns every allow-listed
// source file relative to it, with forward slashes. A dotfile such as
// ".cpp" has no extension and is never a candidate.
func (it *ManifestRepository) Collect(
	ctx context.Context,
	manifest entities.ManifestPath,
) ([]entities.SourceFileRef, error) {
	dir := manifest.Dir()

	var candidates []entities.SourceFileRef
	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == dir {
				return err
			}
			return skipUnreadable(path, entry, err)
		}
		if entry.IsDir() || !it.settings.HasExtension(sourceExtension(entry.Name())) {
			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		candidates = append(candidates, entities.SourceFileRef(filepath.ToSlash(rel)))
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to collect sources under %s: %w", dir, walkErr)
	}

	return candidates, nil
}

// Read loads the whole manifest.
func (it *ManifestRepository) Read(manifest entities.ManifestPath) (entities.ManifestContent, error) {
	data, err := os.ReadFile(manifest.String())
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrManifestUnreadable, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", entities.ErrManifestEmpty, manifest)
	}
	return entities.ManifestContent(data), nil
}

// sourceExtension returns the extension of name, or "" when the whole name
// is a dotfile like ".h".
func sourceExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}

// skipUnreadable keeps a walk going past entries it cannot read.
func skipUnreadable(path string, entry fs.DirEntry, err error) error {
	if entry != nil && entry.IsDir() {
		logger.Warnf("Skipping inaccessible directory %s: %v", path, err)
		return filepath.SkipDir
	}
	logger.Warnf("Skipping %s: %v", path, err)
	return nil
}
