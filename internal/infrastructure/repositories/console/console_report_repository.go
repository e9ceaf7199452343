package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
	"github.com/rios0rios0/cmakeaudit/internal/domain/repositories"
)

// ReportRepository prints an absence report as plain text, coloured when
// writing to a terminal.
type ReportRepository struct {
	out          io.Writer
	manifestName string
	dirColor     *color.Color
	fileColor    *color.Color
	okColor      *color.Color
}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a ReportRepository writing to standard output.
func NewReportRepository(settings *entities.Settings) *ReportRepository {
	colored := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return NewReportRepositoryWithWriter(settings, os.Stdout, colored)
}

// NewReportRepositoryWithWriter creates a ReportRepository writing to out.
func NewReportRepositoryWithWriter(settings *entities.Settings, out io.Writer, colored bool) *ReportRepository {
	it := &ReportRepository{
		out:          out,
		manifestName: settings.ManifestName,
		dirColor:     color.New(color.FgCyan, color.Bold),
		fileColor:    color.New(color.FgYellow),
		okColor:      color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{it.dirColor, it.fileColor, it.okColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return it
}

// Render prints each directory followed by its absent files, one per line
// and indented with a tab. An empty report prints a single line.
func (it *ReportRepository) Render(report *entities.AbsenceReport) error {
	entries := report.Entries()
	if len(entries) == 0 {
		_, err := fmt.Fprintln(it.out, it.okColor.Sprintf(
			"All files are present in all %s or no %s has been found.",
			it.manifestName, it.manifestName,
		))
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintln(it.out, it.dirColor.Sprint(filepath.ToSlash(entry.Dir))); err != nil {
			return err
		}
		for _, file := range entry.Files {
			if _, err := fmt.Fprintf(it.out, "\t%s\n", it.fileColor.Sprint(file.String())); err != nil {
				return err
			}
		}
	}
	return nil
}
