package repositories

import "github.com/rios0rios0/cmakeaudit/internal/domain/entities"

// ReportRepository renders a finished absence report.
type ReportRepository interface {
	Render(report *entities.AbsenceReport) error
}
