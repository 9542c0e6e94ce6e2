package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// accountService implements the AccountSvcFacade interface. Identical
// concurrent list requests of one session share a single API call.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	listGroup   singleflight.Group
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, session *domain.Session, query domain.AccountQuery) (*domain.AccountList, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%s|%+v", session.Token, companyID, query)
	ch := s.listGroup.DoChan(key, func() (interface{}, error) {
		return s.accountRepo.ListAccounts(ctx, session.Token, companyID, query)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		s.logFailure(ctx, res.Err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, res.Err
	}

	list := res.Val.(*domain.AccountList)
	s.LogDebug(ctx, "Accounts listed",
		slog.Int("count", len(list.Accounts)),
		slog.Bool("shared", res.Shared))
	return list, nil
}

func (s *accountService) GetAccount(ctx context.Context, session *domain.Session, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, session.Token, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logFailure(ctx, err, "Failed to get account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) CreateAccount(ctx context.Context, session *domain.Session, input domain.AccountInput) (*domain.Account, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}
	input.CompanyID = companyID
	account, err := s.accountRepo.CreateAccount(ctx, session.Token, input)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create account", slog.String("name", input.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.ID))
	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, session *domain.Session, accountID string, input domain.AccountInput) (*domain.Account, error) {
	account, err := s.accountRepo.UpdateAccount(ctx, session.Token, accountID, input)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, session *domain.Session, accountID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, session.Token, accountID); err != nil {
		s.logFailure(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// categoryService implements the CategorySvc interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvc {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, session *domain.Session) (*domain.CategoryList, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}
	list, err := s.categoryRepo.ListCategories(ctx, session.Token, companyID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list categories", slog.String("company_id", companyID))
		return nil, err
	}
	return list, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, session *domain.Session, input domain.CategoryInput) (*domain.Category, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}
	input.CompanyID = companyID
	category, err := s.categoryRepo.CreateCategory(ctx, session.Token, input)
	if err != nil {
		s.logFailure(ctx, err, "Failed to create category", slog.String("name", input.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.ID))
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, session *domain.Session, categoryID string, input domain.CategoryInput) (*domain.Category, error) {
	category, err := s.categoryRepo.UpdateCategory(ctx, session.Token, categoryID, input)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, session *domain.Session, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, session.Token, categoryID); err != nil {
		s.logFailure(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *categoryService) MoveAccounts(ctx context.Context, session *domain.Session, input domain.MoveAccountsInput) error {
	if len(input.AccountIDs) == 0 {
		return apperrors.NewValidationError(apperrors.ErrValidation, "Select at least one account to move")
	}
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return err
	}
	input.CompanyID = companyID
	if err := s.categoryRepo.MoveAccounts(ctx, session.Token, input); err != nil {
		s.logFailure(ctx, err, "Failed to move accounts", slog.Int("count", len(input.AccountIDs)))
		return err
	}
	s.LogInfo(ctx, "Accounts moved", slog.Int("count", len(input.AccountIDs)))
	return nil
}
