package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) Ledger(ctx context.Context, session *domain.Session, query domain.LedgerQuery) (*domain.LedgerResponse, error) {
	companyID, err := s.prepareLedger(ctx, session, &query)
	if err != nil {
		return nil, err
	}
	if !query.All && query.Limit <= 0 {
		query.Limit = domain.LedgerPageSize
	}

	ledger, err := s.reportingRepo.GetLedger(ctx, session.Token, companyID, query)
	if err != nil {
		s.logFailure(ctx, err, "Failed to retrieve ledger",
			slog.String("account_id", query.AccountID),
			slog.Int("offset", query.Offset))
		return nil, err
	}

	s.LogDebug(ctx, "Ledger retrieved",
		slog.String("account_id", query.AccountID),
		slog.Int("lines", len(ledger.Lines)),
		slog.Bool("all", query.All))
	return ledger, nil
}

func (s *reportingService) TrialBalance(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (*domain.TrialBalanceResponse, error) {
	companyID, err := s.prepareFilter(ctx, session, filter)
	if err != nil {
		return nil, err
	}
	tb, err := s.reportingRepo.GetTrialBalance(ctx, session.Token, companyID, filter)
	if err != nil {
		s.logFailure(ctx, err, "Failed to retrieve trial balance", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogInfo(ctx, "Trial balance report generated",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(tb.Accounts)))
	return tb, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (*domain.BalanceSheetResponse, error) {
	companyID, err := s.prepareFilter(ctx, session, filter)
	if err != nil {
		return nil, err
	}
	bs, err := s.reportingRepo.GetBalanceSheet(ctx, session.Token, companyID, filter)
	if err != nil {
		s.logFailure(ctx, err, "Failed to retrieve balance sheet", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("company_id", companyID),
		slog.Bool("equation_balanced", bs.Totals.EquationBalanced))
	return bs, nil
}

// prepareFilter rejects bad filters before any API call.
func (s *reportingService) prepareFilter(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (string, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return "", err
	}
	if err := filter.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected report filter", slog.String("error", err.Error()))
		return "", err
	}
	return companyID, nil
}

func (s *reportingService) prepareLedger(ctx context.Context, session *domain.Session, query *domain.LedgerQuery) (string, error) {
	if query.AccountID == "" {
		return "", apperrors.NewValidationError(apperrors.ErrValidation, "Select an account to view its ledger.")
	}
	return s.prepareFilter(ctx, session, domain.ReportFilter{StartDate: query.StartDate, EndDate: query.EndDate})
}
