package domain

import "github.com/shopspring/decimal"

// LedgerPageSize is the number of ledger lines shown per page.
const LedgerPageSize = 50

// JournalPageSize is the number of journal entries shown per page.
const JournalPageSize = 10

// LedgerLine is one posting to an account. Balance is the running balance
// computed by the API and is never recomputed locally.
type LedgerLine struct {
	ID                      string          `json:"id"`
	Date                    string          `json:"date"`
	JournalEntryID          string          `json:"journalEntryId"`
	JournalEntryDescription string          `json:"journalEntryDescription"`
	Description             string          `json:"description,omitempty"`
	DebitAmount             decimal.Decimal `json:"debitAmount"`
	CreditAmount            decimal.Decimal `json:"creditAmount"`
	Balance                 decimal.Decimal `json:"balance"`
	AuditFields
}

// LedgerTotals are the server sums over the whole filtered range.
type LedgerTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Net    decimal.Decimal `json:"net"`
}

// Pagination is the server's paging metadata for offset-based listings.
type Pagination struct {
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	CurrentPage int  `json:"currentPage"`
	PageCount   int  `json:"pageCount"`
	ItemsOnPage int  `json:"itemsOnPage"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	NextOffset  *int `json:"nextOffset"`
	PrevOffset  *int `json:"prevOffset"`
}

// LedgerResponse is one page (or, with All, the whole range) of an account ledger.
type LedgerResponse struct {
	Account    AccountRef   `json:"account"`
	Lines      []LedgerLine `json:"lines"`
	Totals     LedgerTotals `json:"totals"`
	Pagination Pagination   `json:"pagination"`
}

// LedgerQuery selects ledger lines. When All is set, Limit and Offset are
// not sent.
type LedgerQuery struct {
	AccountID string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
	All       bool
}

// TrialBalanceAccount is one account row of the trial balance.
type TrialBalanceAccount struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	Status        Status          `json:"status"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Net           decimal.Decimal `json:"net"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalanceTotals sums every column of the trial balance.
type TrialBalanceTotals struct {
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Net           decimal.Decimal `json:"net"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// AppliedFilters echoes the filters the API applied.
type AppliedFilters struct {
	CompanyID string `json:"companyId"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Status    string `json:"status,omitempty"`
}

// TrialBalanceResponse is the trial balance report.
type TrialBalanceResponse struct {
	Accounts []TrialBalanceAccount `json:"accounts"`
	Totals   TrialBalanceTotals    `json:"totals"`
	Filters  AppliedFilters        `json:"filters"`
}

// BalanceSheetAccount is one account row of a balance sheet section.
type BalanceSheetAccount struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetSection is Assets, Liabilities or Equity.
type BalanceSheetSection struct {
	Accounts []BalanceSheetAccount `json:"accounts"`
	Total    decimal.Decimal       `json:"total"`
}

// BalanceSheetTotals carries the section totals and the API's verdict on the
// accounting equation.
type BalanceSheetTotals struct {
	Assets           decimal.Decimal `json:"assets"`
	Liabilities      decimal.Decimal `json:"liabilities"`
	Equity           decimal.Decimal `json:"equity"`
	EquationBalanced bool            `json:"equationBalanced"`
}

// BalanceSheetResponse is the balance sheet report.
type BalanceSheetResponse struct {
	Assets      BalanceSheetSection `json:"assets"`
	Liabilities BalanceSheetSection `json:"liabilities"`
	Equity      BalanceSheetSection `json:"equity"`
	Totals      BalanceSheetTotals  `json:"totals"`
	Filters     AppliedFilters      `json:"filters"`
}

// LiabilitiesAndEquity is the right-hand side of the accounting equation.
func (r BalanceSheetResponse) LiabilitiesAndEquity() decimal.Decimal {
	return r.Totals.Liabilities.Add(r.Totals.Equity)
}

// Reference is the short journal reference shown next to a ledger line.
func (l LedgerLine) Reference() string {
	id := l.JournalEntryID
	if len(id) > 8 {
		id = id[:8]
	}
	return "JE-" + id
}

// DisplayDescription falls back to the journal entry description when the
// line has none.
func (l LedgerLine) DisplayDescription() string {
	if l.Description != "" {
		return l.Description
	}
	return l.JournalEntryDescription
}

// IsEmpty reports whether no section has any account.
func (r BalanceSheetResponse) IsEmpty() bool {
	return len(r.Assets.Accounts) == 0 && len(r.Liabilities.Accounts) == 0 && len(r.Equity.Accounts) == 0
}
