package services

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	ListAccounts(ctx context.Context, session *domain.Session, query domain.AccountQuery) (*domain.AccountList, error)
	GetAccount(ctx context.Context, session *domain.Session, accountID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, session *domain.Session, input domain.AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, session *domain.Session, accountID string, input domain.AccountInput) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, session *domain.Session, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// CategorySvc manages account categories of the session's company.
type CategorySvc interface {
	ListCategories(ctx context.Context, session *domain.Session) (*domain.CategoryList, error)
	CreateCategory(ctx context.Context, session *domain.Session, input domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, session *domain.Session, categoryID string, input domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, session *domain.Session, categoryID string) error
	MoveAccounts(ctx context.Context, session *domain.Session, input domain.MoveAccountsInput) error
}
