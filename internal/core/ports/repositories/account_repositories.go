package repositories

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	ListAccounts(ctx context.Context, token, companyID string, query domain.AccountQuery) (*domain.AccountList, error)
	FindAccountByID(ctx context.Context, token, accountID string) (*domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	CreateAccount(ctx context.Context, token string, input domain.AccountInput) (*domain.Account, error)
	UpdateAccount(ctx context.Context, token, accountID string, input domain.AccountInput) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, token, accountID string) error
}

// AccountRepositoryFacade combines account reads and writes.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// CategoryReader defines read operations for account categories.
type CategoryReader interface {
	ListCategories(ctx context.Context, token, companyID string) (*domain.CategoryList, error)
}

// CategoryWriter defines write operations for account categories.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, token string, input domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, token, categoryID string, input domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, token, categoryID string) error
	MoveAccounts(ctx context.Context, token string, input domain.MoveAccountsInput) error
}

// CategoryRepositoryFacade combines category reads and writes.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
