package handlers_test

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/export"
	"github.com/SscSPs/ledger_dashboard/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}
func (m *MockAuthService) ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockAuthService) RefreshProfile(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockAuthService) UpdateProfile(ctx context.Context, session *domain.Session, update domain.ProfileUpdate) (*domain.Session, error) {
	args := m.Called(ctx, session, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, session *domain.Session, change domain.PasswordChange) error {
	return m.Called(ctx, session, change).Error(0)
}
func (m *MockAuthService) PurgeExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, session *domain.Session, query domain.AccountQuery) (*domain.AccountList, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountList), args.Error(1)
}
func (m *MockAccountService) GetAccount(ctx context.Context, session *domain.Session, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, session, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, session *domain.Session, input domain.AccountInput) (*domain.Account, error) {
	args := m.Called(ctx, session, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, session *domain.Session, accountID string, input domain.AccountInput) (*domain.Account, error) {
	args := m.Called(ctx, session, accountID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, session *domain.Session, accountID string) error {
	return m.Called(ctx, session, accountID).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, session *domain.Session) (*domain.CategoryList, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryList), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, session *domain.Session, input domain.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, session, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, session *domain.Session, categoryID string, input domain.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, session, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, session *domain.Session, categoryID string) error {
	return m.Called(ctx, session, categoryID).Error(0)
}
func (m *MockCategoryService) MoveAccounts(ctx context.Context, session *domain.Session, input domain.MoveAccountsInput) error {
	return m.Called(ctx, session, input).Error(0)
}

var _ portssvc.CategorySvc = (*MockCategoryService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListCompanies(ctx context.Context, session *domain.Session, query domain.ListQuery) (*domain.CompanyList, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyList), args.Error(1)
}
func (m *MockCompanyService) GetCompany(ctx context.Context, session *domain.Session, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, session, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) UpdateMyCompany(ctx context.Context, session *domain.Session, update domain.CompanyUpdate) (*domain.Company, error) {
	args := m.Called(ctx, session, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) DeleteCompany(ctx context.Context, session *domain.Session, companyID string) error {
	return m.Called(ctx, session, companyID).Error(0)
}
func (m *MockCompanyService) ListUsers(ctx context.Context, session *domain.Session, query domain.ListQuery) (*domain.UserList, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserList), args.Error(1)
}
func (m *MockCompanyService) GetUser(ctx context.Context, session *domain.Session, userID string) (*domain.User, error) {
	args := m.Called(ctx, session, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockCompanyService) ListAuditLogs(ctx context.Context, session *domain.Session, query domain.AuditLogQuery) (*domain.AuditLogList, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditLogList), args.Error(1)
}
func (m *MockCompanyService) Summary(ctx context.Context, session *domain.Session, startDate, endDate string) (*domain.CompanySummary, error) {
	args := m.Called(ctx, session, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySummary), args.Error(1)
}

var _ portssvc.CompanySvc = (*MockCompanyService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, session *domain.Session, query domain.JournalQuery) (*domain.JournalList, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalList), args.Error(1)
}
func (m *MockJournalService) GetJournalEntry(ctx context.Context, session *domain.Session, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, session, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) DeleteJournalEntry(ctx context.Context, session *domain.Session, entryID string) error {
	return m.Called(ctx, session, entryID).Error(0)
}
func (m *MockJournalService) ValidateDraft(ctx context.Context, draft *domain.JournalDraft) (accounting.BalanceCheck, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(accounting.BalanceCheck), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock DraftService ---
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) OpenDraft(ctx context.Context, session *domain.Session, entryID string) (*domain.JournalDraft, error) {
	args := m.Called(ctx, session, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalDraft), args.Error(1)
}
func (m *MockDraftService) GetDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalDraft, error) {
	args := m.Called(ctx, session, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalDraft), args.Error(1)
}
func (m *MockDraftService) ApplyOperation(ctx context.Context, session *domain.Session, draftID string, op domain.DraftOperation) (*domain.JournalDraft, error) {
	args := m.Called(ctx, session, draftID, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalDraft), args.Error(1)
}
func (m *MockDraftService) SubmitDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, session, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockDraftService) DiscardDraft(ctx context.Context, session *domain.Session, draftID string) error {
	return m.Called(ctx, session, draftID).Error(0)
}
func (m *MockDraftService) DiscardSession(sessionID string) {
	m.Called(sessionID)
}

var _ portssvc.DraftSvc = (*MockDraftService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Ledger(ctx context.Context, session *domain.Session, query domain.LedgerQuery) (*domain.LedgerResponse, error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerResponse), args.Error(1)
}
func (m *MockReportingService) TrialBalance(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (*domain.TrialBalanceResponse, error) {
	args := m.Called(ctx, session, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceResponse), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (*domain.BalanceSheetResponse, error) {
	args := m.Called(ctx, session, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetResponse), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportLedger(ctx context.Context, session *domain.Session, query domain.LedgerQuery, format export.Format) (*export.File, error) {
	args := m.Called(ctx, session, query, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.File), args.Error(1)
}
func (m *MockExportService) ExportTrialBalance(ctx context.Context, session *domain.Session, filter domain.ReportFilter, format export.Format) (*export.File, error) {
	args := m.Called(ctx, session, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.File), args.Error(1)
}
func (m *MockExportService) ExportBalanceSheet(ctx context.Context, session *domain.Session, filter domain.ReportFilter, format export.Format) (*export.File, error) {
	args := m.Called(ctx, session, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.File), args.Error(1)
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)
