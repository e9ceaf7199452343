package internal

import (
	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
	"github.com/rios0rios0/cmakeaudit/internal/infrastructure/controllers"
)

// AppInternal is the root of the dependency graph handed to main.
type AppInternal struct {
	controllers     []entities.Controller
	auditController *controllers.AuditController
}

// NewAppInternal creates the application context.
func NewAppInternal(
	controllerList *[]entities.Controller,
	auditController *controllers.AuditController,
) *AppInternal {
	return &AppInternal{
		controllers:     *controllerList,
		auditController: auditController,
	}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetAuditController returns the controller bound to the root command.
func (it *AppInternal) GetAuditController() *controllers.AuditController {
	return it.auditController
}
