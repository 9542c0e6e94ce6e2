package handlers_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func ledgerPage(hasNext, hasPrev bool) *domain.LedgerResponse {
	return &domain.LedgerResponse{
		Account: domain.AccountRef{ID: "acc-1", Name: "Cash"},
		Lines: []domain.LedgerLine{{
			ID:                      "ll-1",
			Date:                    "2024-03-02",
			JournalEntryID:          "je-1",
			JournalEntryDescription: "Opening balance",
			DebitAmount:             decimal.NewFromInt(1200),
			Balance:                 decimal.NewFromInt(1200),
		}},
		Totals:     domain.LedgerTotals{Debit: decimal.NewFromInt(1200), Net: decimal.NewFromInt(1200)},
		Pagination: domain.Pagination{Limit: 50, HasNextPage: hasNext, HasPrevPage: hasPrev},
	}
}

func (suite *HandlerTestSuite) TestLedger() {
	suite.reporting.On("Ledger", mock.Anything, suite.viewer, domain.LedgerQuery{
		AccountID: "acc-1",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		Limit:     domain.LedgerPageSize,
	}).Return(ledgerPage(true, false), nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/ledger?accountId=acc-1&startDate=2024-03-01&endDate=2024-03-31", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("Cash", body["account"].(map[string]any)["name"])
	row := body["rows"].([]any)[0].(map[string]any)
	suite.Equal("$1,200.00", row["balance"])
	suite.Equal("-", row["credit"])
	page := body["pagination"].(map[string]any)
	suite.EqualValues(1, page["page"])
	suite.Equal(true, page["hasNext"])
}

func (suite *HandlerTestSuite) TestLedger_NextPageUsesServerFlags() {
	first := domain.LedgerQuery{AccountID: "acc-1", StartDate: "2024-03-01", EndDate: "2024-03-31", Limit: 50}
	second := first
	second.Offset = 50
	suite.reporting.On("Ledger", mock.Anything, suite.viewer, first).Return(ledgerPage(true, false), nil).Once()
	suite.reporting.On("Ledger", mock.Anything, suite.viewer, second).Return(ledgerPage(false, true), nil).Once()

	base := "/api/v1/ledger?accountId=acc-1&startDate=2024-03-01&endDate=2024-03-31"
	suite.Require().Equal(http.StatusOK, suite.request(http.MethodGet, base, viewerSID, nil).Code)

	w := suite.request(http.MethodGet, base+"&nav=next", viewerSID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	page := suite.decode(w)["pagination"].(map[string]any)
	suite.EqualValues(2, page["page"])
	suite.Equal(false, page["hasNext"])
	suite.Equal(true, page["hasPrev"])
}

func (suite *HandlerTestSuite) TestLedger_RequiresAccount() {
	w := suite.request(http.MethodGet, "/api/v1/ledger", viewerSID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Equal("is required", fields["accountId"])
}

func (suite *HandlerTestSuite) TestTrialBalance_DefaultFilter() {
	tb := &domain.TrialBalanceResponse{
		Accounts: []domain.TrialBalanceAccount{
			{ID: "cash", Name: "Cash", AccountType: domain.Asset, DebitBalance: decimal.NewFromInt(500)},
		},
		Totals: domain.TrialBalanceTotals{DebitBalance: decimal.NewFromInt(500), CreditBalance: decimal.NewFromInt(475), Net: decimal.NewFromInt(25)},
	}
	suite.reporting.On("TrialBalance", mock.Anything, suite.viewer, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.Status == domain.StatusFilterActive && f.StartDate != "" && f.EndDate != ""
	})).Return(tb, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/trial-balance", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal(true, body["unbalanced"])
	warning := body["warning"].(map[string]any)
	suite.Equal("Unbalanced Warning", warning["title"])
	suite.Equal("The trial balance is currently off by $25.00. Please review your journal entries for potential errors.", warning["message"])
}

func (suite *HandlerTestSuite) TestTrialBalance_StatusAll() {
	filter := domain.ReportFilter{StartDate: "2024-01-01", EndDate: "2024-01-31", Status: domain.StatusFilterAll}
	suite.reporting.On("TrialBalance", mock.Anything, suite.viewer, filter).
		Return(&domain.TrialBalanceResponse{}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/trial-balance?startDate=2024-01-01&endDate=2024-01-31&status=ALL", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.NotContains(suite.decode(w), "warning")
}

func (suite *HandlerTestSuite) TestBalanceSheet_InvalidRange() {
	suite.reporting.On("BalanceSheet", mock.Anything, suite.viewer, mock.AnythingOfType("domain.ReportFilter")).
		Return(nil, apperrors.NewValidationError(apperrors.ErrInvalidDateRange, "Start date cannot be after end date.")).Once()

	w := suite.request(http.MethodGet, "/api/v1/balance-sheet?startDate=2024-12-31&endDate=2024-01-01", viewerSID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Start date cannot be after end date.", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestBalanceSheet_EquationBanner() {
	bs := &domain.BalanceSheetResponse{
		Totals: domain.BalanceSheetTotals{
			Assets:           decimal.NewFromInt(1000),
			Liabilities:      decimal.NewFromInt(400),
			Equity:           decimal.NewFromInt(600),
			EquationBalanced: true,
		},
	}
	suite.reporting.On("BalanceSheet", mock.Anything, suite.viewer, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return len(f.StartDate) == 10 && f.StartDate[5:] == "01-01"
	})).Return(bs, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/balance-sheet", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	banner := body["banner"].(map[string]any)
	suite.Equal("green", banner["tone"])
	suite.Equal("Accounting Equation Balanced", banner["message"])
	suite.Equal("Assets ($1,000.00) = Liabilities ($400.00) + Equity ($600.00)", banner["equation"])
	suite.Equal("$1,000.00", body["totalLiabilitiesAndEquity"])
}

func (suite *HandlerTestSuite) TestExportTrialBalance_CSV() {
	file := &export.File{
		Name:        "TrialBalance_2024-01-01_2024-01-31.csv",
		ContentType: export.FormatCSV.ContentType(),
		Data:        []byte("Account,Debit,Credit\n"),
		Rows:        0,
	}
	filter := domain.ReportFilter{StartDate: "2024-01-01", EndDate: "2024-01-31", Status: domain.StatusFilterActive}
	suite.export.On("ExportTrialBalance", mock.Anything, suite.viewer, filter, export.FormatCSV).Return(file, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/trial-balance/export?startDate=2024-01-01&endDate=2024-01-31&format=csv", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal(`attachment; filename="TrialBalance_2024-01-01_2024-01-31.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Equal("Account,Debit,Credit\n", w.Body.String())
}

func (suite *HandlerTestSuite) TestExport_LeavesExportLogToService() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	filter := domain.ReportFilter{StartDate: "2024-01-01", EndDate: "2024-03-31", Status: domain.StatusFilterActive}
	suite.export.On("ExportBalanceSheet", mock.Anything, suite.viewer, filter, export.FormatXLSX).
		Return(&export.File{Name: "BalanceSheet.xlsx", ContentType: export.FormatXLSX.ContentType(), Data: []byte("PK")}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/balance-sheet/export?startDate=2024-01-01&endDate=2024-03-31&format=xlsx", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.NotContains(buf.String(), "Report exported")
}

func (suite *HandlerTestSuite) TestExportLedger_DefaultsToPDFAndIgnoresPaging() {
	query := domain.LedgerQuery{AccountID: "acc-1", StartDate: "2024-03-01", EndDate: "2024-03-31"}
	suite.export.On("ExportLedger", mock.Anything, suite.viewer, query, export.FormatPDF).
		Return(&export.File{Name: "Ledger_Cash.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/ledger/export?accountId=acc-1&startDate=2024-03-01&endDate=2024-03-31&page=4", viewerSID, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
}

func (suite *HandlerTestSuite) TestExport_EmptyReportAnswersNoContent() {
	suite.export.On("ExportBalanceSheet", mock.Anything, suite.viewer, mock.AnythingOfType("domain.ReportFilter"), export.FormatXLSX).
		Return(nil, fmt.Errorf("balance sheet: %w", export.ErrEmpty)).Once()

	w := suite.request(http.MethodGet, "/api/v1/balance-sheet/export?format=xlsx", viewerSID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Header().Get("Content-Disposition"))
}

func (suite *HandlerTestSuite) TestExport_UnsupportedFormat() {
	w := suite.request(http.MethodGet, "/api/v1/trial-balance/export?format=docx", viewerSID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["fields"].(map[string]any)
	suite.Contains(fields["format"], "must be one of")
}

func (suite *HandlerTestSuite) TestExport_RateLimited() {
	suite.export.On("ExportTrialBalance", mock.Anything, suite.viewer, mock.AnythingOfType("domain.ReportFilter"), export.FormatCSV).
		Return(nil, export.ErrEmpty).Times(3)

	for range 3 {
		suite.Equal(http.StatusNoContent, suite.request(http.MethodGet, "/api/v1/trial-balance/export?format=csv", viewerSID, nil).Code)
	}
	w := suite.request(http.MethodGet, "/api/v1/trial-balance/export?format=csv", viewerSID, nil)
	suite.Equal(http.StatusTooManyRequests, w.Code)
}
