package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmakeaudit/internal/infrastructure/controllers"
)

func buildRootCommand(auditController *controllers.AuditController) *cobra.Command {
	bind := auditController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          auditController.ValidateArgs,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			// usage is only worth printing for a malformed invocation
			command.SilenceUsage = true
			return auditController.Execute(command, args)
		},
	}

	auditController.AddFlags(cmd)
	return cmd
}

func main() {
	logger.SetOutput(os.Stdout)
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetAuditController())
	cobraRoot.SetOut(os.Stdout)

	if err := cobraRoot.Execute(); err != nil {
		logger.Errorf("Error executing 'cmakeaudit': %s", err)
		os.Exit(1)
	}
}
