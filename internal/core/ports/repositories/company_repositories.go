package repositories

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// CompanyReader defines read operations for tenants.
type CompanyReader interface {
	ListCompanies(ctx context.Context, token string, query domain.ListQuery) (*domain.CompanyList, error)
	FindCompanyByID(ctx context.Context, token, companyID string) (*domain.Company, error)
}

// CompanyWriter defines write operations for tenants.
type CompanyWriter interface {
	UpdateMyCompany(ctx context.Context, token string, update domain.CompanyUpdate) (*domain.Company, error)
	DeleteCompany(ctx context.Context, token, companyID string) error
}

// CompanyRepositoryFacade combines company reads and writes.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}

// UserRepository lists users for the admin screens.
type UserRepository interface {
	ListAllUsers(ctx context.Context, token string, query domain.ListQuery) (*domain.UserList, error)
	ListCompanyUsers(ctx context.Context, token, companyID string, query domain.ListQuery) (*domain.UserList, error)
	FindUserByID(ctx context.Context, token, userID string) (*domain.User, error)
}

// AuditLogRepository lists audit logs.
type AuditLogRepository interface {
	ListAuditLogs(ctx context.Context, token string, query domain.AuditLogQuery) (*domain.AuditLogList, error)
}
