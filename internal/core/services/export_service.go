package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/export"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
)

// exportService implements the ExportSvc interface on top of the reporting
// service, so exports go through the same filter validation.
type exportService struct {
	BaseService
	reporting       portssvc.ReportingSvc
	defaultCurrency string
	now             func() time.Time
}

// ExportServiceOption is a functional option for configuring the export service
type ExportServiceOption func(*exportService)

// WithDefaultCurrency sets the currency used when the company has none.
func WithDefaultCurrency(code string) ExportServiceOption {
	return func(s *exportService) {
		s.defaultCurrency = code
	}
}

// WithExportClock replaces time.Now for the "Generated" line.
func WithExportClock(now func() time.Time) ExportServiceOption {
	return func(s *exportService) {
		s.now = now
	}
}

// NewExportService creates a new export service
func NewExportService(reporting portssvc.ReportingSvc, options ...ExportServiceOption) portssvc.ExportSvc {
	svc := &exportService{
		reporting:       reporting,
		defaultCurrency: utils.FallbackCurrency,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExportLedger(ctx context.Context, session *domain.Session, query domain.LedgerQuery, format export.Format) (*export.File, error) {
	query.All = true
	query.Limit, query.Offset = 0, 0
	ledger, err := s.reporting.Ledger(ctx, session, query)
	if err != nil {
		return nil, err
	}
	doc, err := export.LedgerDocument(ledger, s.currency(session), query.StartDate, query.EndDate, s.now())
	if err != nil {
		return nil, s.failed(ctx, err, "ledger", format)
	}
	return s.render(ctx, doc, "ledger", format)
}

func (s *exportService) ExportTrialBalance(ctx context.Context, session *domain.Session, filter domain.ReportFilter, format export.Format) (*export.File, error) {
	tb, err := s.reporting.TrialBalance(ctx, session, filter)
	if err != nil {
		return nil, err
	}
	doc, err := export.TrialBalanceDocument(tb, companyName(session), s.currency(session), filter.StartDate, filter.EndDate, s.now())
	if err != nil {
		return nil, s.failed(ctx, err, "trial_balance", format)
	}
	return s.render(ctx, doc, "trial_balance", format)
}

func (s *exportService) ExportBalanceSheet(ctx context.Context, session *domain.Session, filter domain.ReportFilter, format export.Format) (*export.File, error) {
	bs, err := s.reporting.BalanceSheet(ctx, session, filter)
	if err != nil {
		return nil, err
	}
	doc, err := export.BalanceSheetDocument(bs, companyName(session), s.currency(session), s.now())
	if err != nil {
		return nil, s.failed(ctx, err, "balance_sheet", format)
	}
	return s.render(ctx, doc, "balance_sheet", format)
}

func (s *exportService) render(ctx context.Context, doc *export.Document, report string, format export.Format) (*export.File, error) {
	file, err := export.Render(doc, format)
	if err != nil {
		return nil, s.failed(ctx, err, report, format)
	}
	s.LogInfo(ctx, "Report exported",
		slog.String("report", report),
		slog.String("format", string(format)),
		slog.Int("rows", file.Rows),
		slog.Int("bytes", len(file.Data)))
	return file, nil
}

func (s *exportService) failed(ctx context.Context, err error, report string, format export.Format) error {
	if errors.Is(err, export.ErrEmpty) {
		s.LogDebug(ctx, "Nothing to export", slog.String("report", report))
		return err
	}
	s.LogError(ctx, err, "Export failed", slog.String("report", report), slog.String("format", string(format)))
	return err
}

func (s *exportService) currency(session *domain.Session) string {
	if code := session.User.Currency(); code != "" {
		return code
	}
	return s.defaultCurrency
}

func companyName(session *domain.Session) string {
	if session.User.Company == nil {
		return ""
	}
	return session.User.Company.Name
}
