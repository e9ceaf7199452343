//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cmakeaudit/internal/domain/commands"
	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
)

// StubAuditCommand is a stub implementation of commands.Audit.
type StubAuditCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.AuditOptions
}

var _ commands.Audit = (*StubAuditCommand)(nil)

func (s *StubAuditCommand) Execute(
	_ context.Context,
	opts commands.AuditOptions,
) (*entities.AbsenceReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return entities.NewAbsenceReport(), nil
}
