package repositories

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetLedger retrieves one page of an account ledger, or the whole range when query.All is set
	GetLedger(ctx context.Context, token, companyID string, query domain.LedgerQuery) (*domain.LedgerResponse, error)

	// GetTrialBalance retrieves the trial balance for the filter
	GetTrialBalance(ctx context.Context, token, companyID string, filter domain.ReportFilter) (*domain.TrialBalanceResponse, error)

	// GetBalanceSheet retrieves the balance sheet for the filter
	GetBalanceSheet(ctx context.Context, token, companyID string, filter domain.ReportFilter) (*domain.BalanceSheetResponse, error)

	// GetCompanySummary retrieves the dashboard headline figures
	GetCompanySummary(ctx context.Context, token, companyID, startDate, endDate string) (*domain.CompanySummary, error)
}
