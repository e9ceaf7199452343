package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
	"github.com/rios0rios0/cmakeaudit/internal/domain/repositories"
)

// Audit is the interface for the audit command.
type Audit interface {
	Execute(ctx context.Context, opts AuditOptions) (*entities.AbsenceReport, error)
}

// AuditOptions holds runtime options for a single audit.
type AuditOptions struct {
	Root    string
	Verbose bool
}

// auditStats counts what one audit went through, for the closing summary.
type auditStats struct {
	manifests  int
	skipped    int
	candidates int
}

// AuditCommand orchestrates the whole audit:
// locate manifests -> collect candidates -> check references -> render.
type AuditCommand struct {
	settings  *entities.Settings
	checker   *entities.ReferenceChecker
	manifests repositories.ManifestRepository
	reporter  repositories.ReportRepository
}

// NewAuditCommand creates a new AuditCommand.
func NewAuditCommand(
	settings *entities.Settings,
	checker *entities.ReferenceChecker,
	manifests repositories.ManifestRepository,
	reporter repositories.ReportRepository,
) *AuditCommand {
	return &AuditCommand{
		settings:  settings,
		checker:   checker,
		manifests: manifests,
		reporter:  reporter,
	}
}

// Execute scans opts.Root and renders the resulting report. Per-manifest
// failures are logged and skipped; only cancellation and rendering errors
// are returned.
func (it *AuditCommand) Execute(ctx context.Context, opts AuditOptions) (*entities.AbsenceReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	manifests, err := it.manifests.Locate(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to locate manifests under %q: %w", root, err)
	}
	logger.Infof("Found %d %s file(s) under %q", len(manifests), it.settings.ManifestName, root)

	report := entities.NewAbsenceReport()
	stats := auditStats{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(it.settings.Concurrency())

	for _, manifest := range manifests {
		if groupCtx.Err() != nil {
			break
		}
		stats.manifests++
		dispatched, scanErr := it.scanManifest(groupCtx, group, manifest, report)
		if scanErr != nil {
			logger.Warnf("Skipping %s: %v", manifest, scanErr)
			stats.skipped++
			continue
		}
		stats.candidates += dispatched
	}

	// every dispatched check must finish before anything is rendered
	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	if renderErr := it.reporter.Render(report); renderErr != nil {
		return nil, fmt.Errorf("failed to render report: %w", renderErr)
	}

	logger.Infof(
		"Audit complete: %d manifests scanned (%d skipped), %d candidates checked, %d absent",
		stats.manifests, stats.skipped, stats.candidates, report.Len(),
	)
	return report, nil
}

// scanManifest collects the candidates of one manifest, loads its text and
// dispatches one reference check per candidate into group. It returns the
// number of dispatched checks.
func (it *AuditCommand) scanManifest(
	ctx context.Context,
	group *errgroup.Group,
	manifest entities.ManifestPath,
	report *entities.AbsenceReport,
) (int, error) {
	candidates, err := it.manifests.Collect(ctx, manifest)
	if err != nil {
		return 0, err
	}

	content, err := it.manifests.Read(manifest)
	if err != nil {
		return 0, describeReadError(err)
	}

	dir := manifest.Dir()
	logger.Debugf("Checking %d candidate(s) against %s", len(candidates), manifest)

	dispatched := 0
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if it.checker.IsReferenced(content, candidate) {
				logger.Debugf("  %s: referenced", candidate)
				return nil
			}
			logger.Debugf("  %s: absent", candidate)
			report.Add(dir, candidate)
			return nil
		})
		dispatched++
	}
	return dispatched, nil
}

func describeReadError(err error) error {
	switch {
	case errors.Is(err, entities.ErrManifestEmpty):
		return fmt.Errorf("nothing to check: %w", err)
	case errors.Is(err, entities.ErrManifestUnreadable):
		return fmt.Errorf("cannot open the file: %w", err)
	default:
		return err
	}
}
