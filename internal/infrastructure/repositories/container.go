package repositories

import (
	domainRepos "github.com/rios0rios0/cmakeaudit/internal/domain/repositories"
	"github.com/rios0rios0/cmakeaudit/internal/infrastructure/repositories/console"
	"github.com/rios0rios0/cmakeaudit/internal/infrastructure/repositories/filesystem"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(filesystem.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(console.NewReportRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *filesystem.ManifestRepository) domainRepos.ManifestRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *console.ReportRepository) domainRepos.ReportRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
