package services

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/export"
)

// ReportingSvc defines operations for fetching financial reports
type ReportingSvc interface {
	// Ledger fetches one page of an account ledger.
	Ledger(ctx context.Context, session *domain.Session, query domain.LedgerQuery) (*domain.LedgerResponse, error)

	// TrialBalance validates filter before fetching.
	TrialBalance(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (*domain.TrialBalanceResponse, error)

	// BalanceSheet validates filter before fetching.
	BalanceSheet(ctx context.Context, session *domain.Session, filter domain.ReportFilter) (*domain.BalanceSheetResponse, error)
}

// ExportSvc renders reports to files. Every export refetches its data; the
// ledger is fetched unpaginated.
type ExportSvc interface {
	ExportLedger(ctx context.Context, session *domain.Session, query domain.LedgerQuery, format export.Format) (*export.File, error)
	ExportTrialBalance(ctx context.Context, session *domain.Session, filter domain.ReportFilter, format export.Format) (*export.File, error)
	ExportBalanceSheet(ctx context.Context, session *domain.Session, filter domain.ReportFilter, format export.Format) (*export.File, error)
}
