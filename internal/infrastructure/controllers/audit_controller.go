package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmakeaudit/internal/domain/commands"
	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
)

// AuditController binds the audit command to the root of the CLI.
type AuditController struct {
	command commands.Audit
}

// NewAuditController creates a new AuditController.
func NewAuditController(command commands.Audit) *AuditController {
	return &AuditController{command: command}
}

// GetBind returns the Cobra command metadata for the audit controller.
func (it *AuditController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "cmakeaudit [path]",
		Short: "Report source files missing from their CMakeLists.txt",
		Long: `Recursively finds every CMakeLists.txt under a directory, lists the source
files (.cpp, .h, .cc, .mm, .proto, .rc) below each one and reports those
that the manifest never mentions.

A file counts as mentioned only when its path relative to the manifest
appears with whitespace on both sides, so "add_executable(x main.cpp)"
does not reference main.cpp.

Usage:
  cmakeaudit              Audit the current directory
  cmakeaudit /path/to/src Audit a specific directory`,
	}
}

// ValidateArgs accepts at most one path argument.
func (it *AuditController) ValidateArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one path, got %d arguments", entities.ErrInvocation, len(args))
	}
	return nil
}

// Execute runs the audit on the given path, or the current directory.
func (it *AuditController) Execute(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	if _, err := it.command.Execute(cmd.Context(), commands.AuditOptions{
		Root:    root,
		Verbose: verbose,
	}); err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}
	return nil
}

// AddFlags adds the audit flags to the given Cobra command.
func (it *AuditController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false, "Log every reference decision")
}
