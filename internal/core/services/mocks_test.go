package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAuthRepository is a mock type for the AuthRepository interface
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockAuthRepository) FetchProfile(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthRepository) UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, token, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthRepository) ChangePassword(ctx context.Context, token string, change domain.PasswordChange) error {
	return m.Called(ctx, token, change).Error(0)
}

// MockSessionRepository is a mock type for the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindSession(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionRepository) PurgeSessionsBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, token, companyID string, query domain.AccountQuery) (*domain.AccountList, error) {
	args := m.Called(ctx, token, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountList), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, token, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, token, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, token string, input domain.AccountInput) (*domain.Account, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, token, accountID string, input domain.AccountInput) (*domain.Account, error) {
	args := m.Called(ctx, token, accountID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, token, accountID string) error {
	return m.Called(ctx, token, accountID).Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, token, companyID string) (*domain.CategoryList, error) {
	args := m.Called(ctx, token, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryList), args.Error(1)
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, token string, input domain.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, token, categoryID string, input domain.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, token, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, token, categoryID string) error {
	return m.Called(ctx, token, categoryID).Error(0)
}

func (m *MockCategoryRepository) MoveAccounts(ctx context.Context, token string, input domain.MoveAccountsInput) error {
	return m.Called(ctx, token, input).Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, token string, query domain.ListQuery) (*domain.CompanyList, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyList), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, token, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, token, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateMyCompany(ctx context.Context, token string, update domain.CompanyUpdate) (*domain.Company, error) {
	args := m.Called(ctx, token, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, token, companyID string) error {
	return m.Called(ctx, token, companyID).Error(0)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListAllUsers(ctx context.Context, token string, query domain.ListQuery) (*domain.UserList, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserList), args.Error(1)
}

func (m *MockUserRepository) ListCompanyUsers(ctx context.Context, token, companyID string, query domain.ListQuery) (*domain.UserList, error) {
	args := m.Called(ctx, token, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserList), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, token, userID string) (*domain.User, error) {
	args := m.Called(ctx, token, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAuditLogRepository is a mock type for the AuditLogRepository interface
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, token string, query domain.AuditLogQuery) (*domain.AuditLogList, error) {
	args := m.Called(ctx, token, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditLogList), args.Error(1)
}

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, token, companyID string, query domain.JournalQuery) (*domain.JournalList, error) {
	args := m.Called(ctx, token, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalList), args.Error(1)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, token, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, token, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) CreateJournalEntry(ctx context.Context, token string, payload domain.JournalPayload) (*domain.JournalEntry, error) {
	args := m.Called(ctx, token, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) UpdateJournalEntry(ctx context.Context, token, entryID string, payload domain.JournalPayload) (*domain.JournalEntry, error) {
	args := m.Called(ctx, token, entryID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) DeleteJournalEntry(ctx context.Context, token, entryID string) error {
	return m.Called(ctx, token, entryID).Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetLedger(ctx context.Context, token, companyID string, query domain.LedgerQuery) (*domain.LedgerResponse, error) {
	args := m.Called(ctx, token, companyID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerResponse), args.Error(1)
}

func (m *MockReportingRepository) GetTrialBalance(ctx context.Context, token, companyID string, filter domain.ReportFilter) (*domain.TrialBalanceResponse, error) {
	args := m.Called(ctx, token, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceResponse), args.Error(1)
}

func (m *MockReportingRepository) GetBalanceSheet(ctx context.Context, token, companyID string, filter domain.ReportFilter) (*domain.BalanceSheetResponse, error) {
	args := m.Called(ctx, token, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetResponse), args.Error(1)
}

func (m *MockReportingRepository) GetCompanySummary(ctx context.Context, token, companyID, startDate, endDate string) (*domain.CompanySummary, error) {
	args := m.Called(ctx, token, companyID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySummary), args.Error(1)
}

func companySession() *domain.Session {
	user := domain.User{
		ID:       "user-1",
		Username: "ada",
		UserRole: domain.RoleCompanyAdmin,
		Company:  &domain.Company{ID: "company-1", Name: "Acme", Currency: "BDT"},
	}
	return &domain.Session{
		ID:           "session-1",
		Token:        "api-token",
		User:         user,
		Capabilities: domain.CapabilitiesFor(user.UserRole),
	}
}

func platformSession() *domain.Session {
	user := domain.User{ID: "root", Username: "root", UserRole: domain.RoleSuperAdmin}
	return &domain.Session{
		ID:           "session-root",
		Token:        "root-token",
		User:         user,
		Capabilities: domain.CapabilitiesFor(user.UserRole),
	}
}
