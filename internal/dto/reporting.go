package dto

import (
	"strings"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/export"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/SscSPs/ledger_dashboard/internal/views"
	"github.com/shopspring/decimal"
)

// LedgerParams defines query parameters for the ledger view and its export.
type LedgerParams struct {
	AccountID string `form:"accountId" binding:"required"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Page      int    `form:"page" binding:"min=0"`
	Nav       string `form:"nav" binding:"omitempty,oneof=next prev"`
}

// FilterKey identifies the filters; a change sends the ledger back to page 1.
func (p LedgerParams) FilterKey() string {
	return strings.Join([]string{p.AccountID, p.StartDate, p.EndDate}, "|")
}

// ToQuery converts the params to a ledger query for the given page request.
func (p LedgerParams) ToQuery(req views.Request) domain.LedgerQuery {
	return domain.LedgerQuery{
		AccountID: p.AccountID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
}

// ExportQuery is the query an export starts from; paging is ignored.
func (p LedgerParams) ExportQuery() domain.LedgerQuery {
	return domain.LedgerQuery{AccountID: p.AccountID, StartDate: p.StartDate, EndDate: p.EndDate}
}

// ReportParams defines query parameters for the trial balance and balance sheet.
type ReportParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Status    string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ALL"`
}

// ToFilter converts the params to a report filter. A missing status means ACTIVE.
func (p ReportParams) ToFilter() domain.ReportFilter {
	status := domain.StatusFilter(p.Status)
	if status == "" {
		status = domain.StatusFilterActive
	}
	return domain.ReportFilter{StartDate: p.StartDate, EndDate: p.EndDate, Status: status}
}

// ExportParams selects the export format.
type ExportParams struct {
	Format string `form:"format" binding:"omitempty,oneof=pdf xlsx csv PDF XLSX CSV"`
}

// ToFormat parses the format, defaulting to PDF.
func (p ExportParams) ToFormat() (export.Format, error) {
	return export.ParseFormat(p.Format)
}

// LedgerRow is one formatted ledger line.
type LedgerRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Reference   string `json:"ref"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Balance     string `json:"balance"`
	BalanceSign string `json:"balanceSign"`
}

// LedgerTotalsView is the formatted totals row.
type LedgerTotalsView struct {
	Debit  string `json:"debit"`
	Credit string `json:"credit"`
	Net    string `json:"net"`
}

// PageView is the paging state returned with a paged view.
type PageView struct {
	Page    int  `json:"page"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// LedgerView is one page of an account ledger ready to render. Rows keep the
// server's order and balances.
type LedgerView struct {
	Account    domain.AccountRef `json:"account"`
	Rows       []LedgerRow       `json:"rows"`
	Totals     LedgerTotalsView  `json:"totals"`
	Pagination PageView          `json:"pagination"`
}

// ToLedgerView formats a ledger page in currency.
func ToLedgerView(l *domain.LedgerResponse, page PageView, currency string) LedgerView {
	rows := make([]LedgerRow, len(l.Lines))
	for i, line := range l.Lines {
		rows[i] = LedgerRow{
			ID:          line.ID,
			Date:        domain.DateOnly(line.Date),
			Reference:   line.Reference(),
			Description: line.DisplayDescription(),
			Debit:       sidedAmount(line.DebitAmount, currency),
			Credit:      sidedAmount(line.CreditAmount, currency),
			Balance:     utils.FormatCurrency(line.Balance, currency),
			BalanceSign: balanceSign(line.Balance),
		}
	}
	return LedgerView{
		Account: l.Account,
		Rows:    rows,
		Totals: LedgerTotalsView{
			Debit:  utils.FormatCurrency(l.Totals.Debit, currency),
			Credit: utils.FormatCurrency(l.Totals.Credit, currency),
			Net:    utils.FormatCurrency(l.Totals.Net, currency),
		},
		Pagination: page,
	}
}

// TrialBalanceRow is one formatted trial balance account.
type TrialBalanceRow struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	Status        domain.Status      `json:"status"`
	DebitBalance  string             `json:"debitBalance"`
	CreditBalance string             `json:"creditBalance"`
}

// Banner is a colored notice above a report.
type Banner struct {
	Tone    string `json:"tone"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// TrialBalanceView is the trial balance ready to render.
type TrialBalanceView struct {
	Accounts           []TrialBalanceRow     `json:"accounts"`
	TotalDebitBalance  string                `json:"totalDebitBalance"`
	TotalCreditBalance string                `json:"totalCreditBalance"`
	Unbalanced         bool                  `json:"unbalanced"`
	Warning            *Banner               `json:"warning,omitempty"`
	Filters            domain.AppliedFilters `json:"filters"`
}

// unbalancedTolerance is how far the trial balance net may drift from zero.
var unbalancedTolerance = decimal.RequireFromString("0.01")

// ToTrialBalanceView formats the trial balance. The warning appears when the
// server's net total is off by more than a cent.
func ToTrialBalanceView(tb *domain.TrialBalanceResponse, currency string) TrialBalanceView {
	rows := make([]TrialBalanceRow, len(tb.Accounts))
	for i, a := range tb.Accounts {
		rows[i] = TrialBalanceRow{
			ID:            a.ID,
			Name:          a.Name,
			AccountType:   a.AccountType,
			Status:        a.Status,
			DebitBalance:  sidedAmount(a.DebitBalance, currency),
			CreditBalance: sidedAmount(a.CreditBalance, currency),
		}
	}
	v := TrialBalanceView{
		Accounts:           rows,
		TotalDebitBalance:  utils.FormatCurrency(tb.Totals.DebitBalance, currency),
		TotalCreditBalance: utils.FormatCurrency(tb.Totals.CreditBalance, currency),
		Filters:            tb.Filters,
	}
	off := tb.Totals.Net.Abs()
	if off.GreaterThan(unbalancedTolerance) {
		v.Unbalanced = true
		v.Warning = &Banner{
			Tone:  "red",
			Title: "Unbalanced Warning",
			Message: "The trial balance is currently off by " + utils.FormatCurrency(off, currency) +
				". Please review your journal entries for potential errors.",
		}
	}
	return v
}

// BalanceSheetAccountRow is one formatted account of a section.
type BalanceSheetAccountRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// BalanceSheetSectionView is Assets, Liabilities or Equity with its subtotal.
type BalanceSheetSectionView struct {
	Title    string                   `json:"title"`
	Accounts []BalanceSheetAccountRow `json:"accounts"`
	Total    string                   `json:"total"`
}

// EquationBanner reports the server's verdict on Assets = Liabilities + Equity.
type EquationBanner struct {
	Balanced bool   `json:"balanced"`
	Tone     string `json:"tone"`
	Message  string `json:"message"`
	Equation string `json:"equation"`
}

// BalanceSheetView is the balance sheet ready to render.
type BalanceSheetView struct {
	Assets                    BalanceSheetSectionView `json:"assets"`
	Liabilities               BalanceSheetSectionView `json:"liabilities"`
	Equity                    BalanceSheetSectionView `json:"equity"`
	TotalLiabilitiesAndEquity string                  `json:"totalLiabilitiesAndEquity"`
	Banner                    EquationBanner          `json:"banner"`
	Filters                   domain.AppliedFilters   `json:"filters"`
}

// ToBalanceSheetView formats the balance sheet. The banner follows the
// server's equationBalanced flag; totals are never compared locally.
func ToBalanceSheetView(bs *domain.BalanceSheetResponse, currency string) BalanceSheetView {
	banner := EquationBanner{
		Balanced: bs.Totals.EquationBalanced,
		Tone:     "red",
		Message:  "Warning: Accounting Equation NOT Balanced",
		Equation: "Assets (" + utils.FormatCurrency(bs.Totals.Assets, currency) +
			") = Liabilities (" + utils.FormatCurrency(bs.Totals.Liabilities, currency) +
			") + Equity (" + utils.FormatCurrency(bs.Totals.Equity, currency) + ")",
	}
	if bs.Totals.EquationBalanced {
		banner.Tone = "green"
		banner.Message = "Accounting Equation Balanced"
	}
	return BalanceSheetView{
		Assets:                    toSectionView("Assets", bs.Assets, currency),
		Liabilities:               toSectionView("Liabilities", bs.Liabilities, currency),
		Equity:                    toSectionView("Equity", bs.Equity, currency),
		TotalLiabilitiesAndEquity: utils.FormatCurrency(bs.LiabilitiesAndEquity(), currency),
		Banner:                    banner,
		Filters:                   bs.Filters,
	}
}

func toSectionView(title string, s domain.BalanceSheetSection, currency string) BalanceSheetSectionView {
	rows := make([]BalanceSheetAccountRow, len(s.Accounts))
	for i, a := range s.Accounts {
		rows[i] = BalanceSheetAccountRow{ID: a.ID, Name: a.Name, Balance: utils.FormatCurrency(a.Balance, currency)}
	}
	return BalanceSheetSectionView{Title: title, Accounts: rows, Total: utils.FormatCurrency(s.Total, currency)}
}

func balanceSign(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "negative"
	}
	return "positive"
}
