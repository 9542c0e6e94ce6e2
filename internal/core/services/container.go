package services

import (
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, authOptions ...AuthServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Drafts die with the session that opened them.
	draft := NewDraftService(repos.JournalRepo)
	container.Draft = draft

	authOptions = append([]AuthServiceOption{
		WithSessionTTL(cfg.SessionTTL),
		WithSessionEndHook(draft.DiscardSession),
	}, authOptions...)
	container.Auth = NewAuthService(repos.AuthRepo, repos.SessionRepo, authOptions...)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.UserRepo, repos.AuditRepo, repos.ReportingRepo)
	container.Journal = NewJournalService(repos.JournalRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Export = NewExportService(container.Reporting, WithDefaultCurrency(cfg.DefaultCurrency))

	return container
}
