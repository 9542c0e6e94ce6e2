package services

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// CompanySvc covers tenant administration and the dashboard summary.
type CompanySvc interface {
	ListCompanies(ctx context.Context, session *domain.Session, query domain.ListQuery) (*domain.CompanyList, error)
	GetCompany(ctx context.Context, session *domain.Session, companyID string) (*domain.Company, error)
	UpdateMyCompany(ctx context.Context, session *domain.Session, update domain.CompanyUpdate) (*domain.Company, error)
	DeleteCompany(ctx context.Context, session *domain.Session, companyID string) error

	// ListUsers lists every user for platform admins and the company's own
	// users for company admins.
	ListUsers(ctx context.Context, session *domain.Session, query domain.ListQuery) (*domain.UserList, error)
	GetUser(ctx context.Context, session *domain.Session, userID string) (*domain.User, error)

	// ListAuditLogs ignores query.CompanyID unless the session may filter by
	// company.
	ListAuditLogs(ctx context.Context, session *domain.Session, query domain.AuditLogQuery) (*domain.AuditLogList, error)

	Summary(ctx context.Context, session *domain.Session, startDate, endDate string) (*domain.CompanySummary, error)
}
