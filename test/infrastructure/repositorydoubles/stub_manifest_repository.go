//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
	"github.com/rios0rios0/cmakeaudit/internal/domain/repositories"
)

// StubManifestRepository implements repositories.ManifestRepository from
// in-memory fixtures.
type StubManifestRepository struct {
	// --- Locate ---
	Manifests []entities.ManifestPath
	LocateErr error

	// --- Collect ---
	Candidates map[entities.ManifestPath][]entities.SourceFileRef
	CollectErr map[entities.ManifestPath]error

	// --- Read ---
	Contents map[entities.ManifestPath]entities.ManifestContent
	ReadErr  map[entities.ManifestPath]error

	mu          sync.Mutex
	LocatedRoot []string
	ReadCalls   []entities.ManifestPath
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Locate(_ context.Context, root string) ([]entities.ManifestPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LocatedRoot = append(s.LocatedRoot, root)
	return s.Manifests, s.LocateErr
}

func (s *StubManifestRepository) Collect(
	_ context.Context, manifest entities.ManifestPath,
) ([]entities.SourceFileRef, error) {
	if err := s.CollectErr[manifest]; err != nil {
		return nil, err
	}
	return s.Candidates[manifest], nil
}

func (s *StubManifestRepository) Read(manifest entities.ManifestPath) (entities.ManifestContent, error) {
	s.mu.Lock()
	s.ReadCalls = append(s.ReadCalls, manifest)
	s.mu.Unlock()

	if err := s.ReadErr[manifest]; err != nil {
		return "", err
	}
	return s.Contents[manifest], nil
}
