//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
	"github.com/rios0rios0/cmakeaudit/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository and records
// what it was asked to render.
type SpyReportRepository struct {
	RenderErr   error
	RenderCalls int
	Rendered    []entities.AbsenceEntry
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Render(report *entities.AbsenceReport) error {
	s.RenderCalls++
	s.Rendered = report.Entries()
	return s.RenderErr
}
