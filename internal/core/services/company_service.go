package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
)

// companyService implements the CompanySvc interface
type companyService struct {
	BaseService
	companyRepo   portsrepo.CompanyRepositoryFacade
	userRepo      portsrepo.UserRepository
	auditRepo     portsrepo.AuditLogRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserRepository,
	auditRepo portsrepo.AuditLogRepository,
	reportingRepo portsrepo.ReportingRepository,
) portssvc.CompanySvc {
	return &companyService{
		companyRepo:   companyRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.CompanySvc = (*companyService)(nil)

func (s *companyService) ListCompanies(ctx context.Context, session *domain.Session, query domain.ListQuery) (*domain.CompanyList, error) {
	list, err := s.companyRepo.ListCompanies(ctx, session.Token, query)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list companies")
		return nil, err
	}
	return list, nil
}

func (s *companyService) GetCompany(ctx context.Context, session *domain.Session, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, session.Token, companyID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get company", slog.String("company_id", companyID))
		return nil, err
	}
	return company, nil
}

func (s *companyService) UpdateMyCompany(ctx context.Context, session *domain.Session, update domain.CompanyUpdate) (*domain.Company, error) {
	if _, err := s.CompanyOf(session); err != nil {
		return nil, err
	}
	company, err := s.companyRepo.UpdateMyCompany(ctx, session.Token, update)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update company")
		return nil, err
	}
	s.LogInfo(ctx, "Company updated", slog.String("company_id", company.ID))
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, session *domain.Session, companyID string) error {
	if err := s.companyRepo.DeleteCompany(ctx, session.Token, companyID); err != nil {
		s.logFailure(ctx, err, "Failed to delete company", slog.String("company_id", companyID))
		return err
	}
	s.LogInfo(ctx, "Company deleted", slog.String("company_id", companyID))
	return nil
}

func (s *companyService) ListUsers(ctx context.Context, session *domain.Session, query domain.ListQuery) (*domain.UserList, error) {
	var (
		list *domain.UserList
		err  error
	)
	switch {
	case session.Capabilities.CanManageAllUsers:
		list, err = s.userRepo.ListAllUsers(ctx, session.Token, query)
	case session.Capabilities.CanManageCompanyUsers:
		companyID, cerr := s.CompanyOf(session)
		if cerr != nil {
			return nil, cerr
		}
		list, err = s.userRepo.ListCompanyUsers(ctx, session.Token, companyID, query)
	default:
		return nil, apperrors.ErrForbidden
	}
	if err != nil {
		s.logFailure(ctx, err, "Failed to list users")
		return nil, err
	}
	return list, nil
}

func (s *companyService) GetUser(ctx context.Context, session *domain.Session, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, session.Token, userID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get user", slog.String("target_user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *companyService) ListAuditLogs(ctx context.Context, session *domain.Session, query domain.AuditLogQuery) (*domain.AuditLogList, error) {
	if !session.Capabilities.CanFilterAuditByCompany {
		// company admins always see their own company only
		query.CompanyID = ""
	}
	list, err := s.auditRepo.ListAuditLogs(ctx, session.Token, query)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list audit logs")
		return nil, err
	}
	return list, nil
}

func (s *companyService) Summary(ctx context.Context, session *domain.Session, startDate, endDate string) (*domain.CompanySummary, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}
	summary, err := s.reportingRepo.GetCompanySummary(ctx, session.Token, companyID, startDate, endDate)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load company summary", slog.String("company_id", companyID))
		return nil, err
	}
	return summary, nil
}
