package dto

import (
	"strings"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/SscSPs/ledger_dashboard/internal/utils/accounting"
	"github.com/SscSPs/ledger_dashboard/internal/views"
	"github.com/shopspring/decimal"
)

// JournalListParams defines query parameters for the journal entry list.
type JournalListParams struct {
	Search    string `form:"q"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Page      int    `form:"page" binding:"min=0"`
	Nav       string `form:"nav" binding:"omitempty,oneof=next prev"`
}

// FilterKey identifies the filters; a change sends the list back to page 1.
func (p JournalListParams) FilterKey() string {
	return strings.Join([]string{strings.TrimSpace(p.Search), p.StartDate, p.EndDate}, "|")
}

// ToQuery converts the params to a journal query for the given page request.
func (p JournalListParams) ToQuery(req views.Request) domain.JournalQuery {
	return domain.JournalQuery{
		Search:    strings.TrimSpace(p.Search),
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
}

// JournalEntryRow is one row of the journal list.
type JournalEntryRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	LineCount   int    `json:"lineCount"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// JournalListResponse is one page of the journal list plus the totals of
// everything matching the filters.
type JournalListResponse struct {
	Entries     []JournalEntryRow `json:"entries"`
	Total       int               `json:"total"`
	TotalDebit  string            `json:"totalDebit"`
	TotalCredit string            `json:"totalCredit"`
	Page        int               `json:"page"`
	HasNext     bool              `json:"hasNext"`
	HasPrev     bool              `json:"hasPrev"`
}

// ToJournalListResponse formats a journal page in currency.
func ToJournalListResponse(list *domain.JournalList, page int, hasNext, hasPrev bool, currency string) JournalListResponse {
	rows := make([]JournalEntryRow, len(list.Entries))
	for i, e := range list.Entries {
		rows[i] = JournalEntryRow{
			ID:          e.ID,
			Date:        domain.DateOnly(e.Date),
			Description: e.Description,
			LineCount:   len(e.Lines),
			Debit:       utils.FormatCurrency(e.Totals.Debit, currency),
			Credit:      utils.FormatCurrency(e.Totals.Credit, currency),
		}
	}
	return JournalListResponse{
		Entries:     rows,
		Total:       list.Total,
		TotalDebit:  utils.FormatCurrency(list.Totals.Debit, currency),
		TotalCredit: utils.FormatCurrency(list.Totals.Credit, currency),
		Page:        page,
		HasNext:     hasNext,
		HasPrev:     hasPrev,
	}
}

// JournalLineView is a persisted journal line with display amounts.
type JournalLineView struct {
	ID          string `json:"id"`
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Description string `json:"description"`
}

// JournalEntryView is a journal entry as shown in its detail view.
type JournalEntryView struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
	Lines       []JournalLineView `json:"lines"`
	TotalDebit  string            `json:"totalDebit"`
	TotalCredit string            `json:"totalCredit"`
}

// ToJournalEntryView formats an entry in currency. Null and zero amounts show "-".
func ToJournalEntryView(e *domain.JournalEntry, currency string) JournalEntryView {
	lines := make([]JournalLineView, len(e.Lines))
	for i, l := range e.Lines {
		name := ""
		if l.Account != nil {
			name = l.Account.Name
		}
		lines[i] = JournalLineView{
			ID:          l.ID,
			AccountID:   l.AccountID,
			AccountName: name,
			Debit:       sidedAmount(l.DebitAmount.Decimal, currency),
			Credit:      sidedAmount(l.CreditAmount.Decimal, currency),
			Description: l.Description,
		}
	}
	return JournalEntryView{
		ID:          e.ID,
		Date:        domain.DateOnly(e.Date),
		Description: e.Description,
		Lines:       lines,
		TotalDebit:  utils.FormatCurrency(e.Totals.Debit, currency),
		TotalCredit: utils.FormatCurrency(e.Totals.Credit, currency),
	}
}

// OpenDraftRequest opens the journal form. An empty entryId starts a new entry.
type OpenDraftRequest struct {
	EntryID string `json:"entryId"`
}

// DraftOperationRequest is one edit of the journal form.
type DraftOperationRequest struct {
	Op    string `json:"op" binding:"required,oneof=add remove update header"`
	Index int    `json:"index" binding:"min=0"`
	Field string `json:"field" binding:"required_if=Op update,required_if=Op header"`
	Value string `json:"value"`
}

// ToOperation converts the request to an editor operation.
func (r DraftOperationRequest) ToOperation() domain.DraftOperation {
	return domain.DraftOperation{
		Op:    domain.DraftOp(r.Op),
		Index: r.Index,
		Field: domain.LineField(r.Field),
		Value: r.Value,
	}
}

// DraftLineRequest is a line of a journal posted for stateless validation.
type DraftLineRequest struct {
	AccountID    string        `json:"accountId"`
	DebitAmount  domain.Amount `json:"debitAmount"`
	CreditAmount domain.Amount `json:"creditAmount"`
	Description  string        `json:"description"`
}

// ValidateJournalRequest is a whole journal form posted for validation.
type ValidateJournalRequest struct {
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Lines       []DraftLineRequest `json:"lines" binding:"required"`
}

// ToDraft converts the request to a draft.
func (r ValidateJournalRequest) ToDraft() *domain.JournalDraft {
	d := &domain.JournalDraft{Date: r.Date, Description: r.Description}
	for _, l := range r.Lines {
		d.Lines = append(d.Lines, domain.DraftLine{
			AccountID:   l.AccountID,
			Debit:       l.DebitAmount,
			Credit:      l.CreditAmount,
			Description: l.Description,
		})
	}
	return d
}

// BalanceView is the live balance indicator under the journal form.
type BalanceView struct {
	accounting.BalanceCheck
	TotalDebitsDisplay  string `json:"totalDebitsDisplay"`
	TotalCreditsDisplay string `json:"totalCreditsDisplay"`
	Warning             string `json:"warning,omitempty"`
	CanSubmit           bool   `json:"canSubmit"`
}

// ToBalanceView formats a balance check. The out-of-balance warning is only
// shown once something has been debited.
func ToBalanceView(check accounting.BalanceCheck, currency string) BalanceView {
	v := BalanceView{
		BalanceCheck:        check,
		TotalDebitsDisplay:  utils.FormatCurrency(check.TotalDebits, currency),
		TotalCreditsDisplay: utils.FormatCurrency(check.TotalCredits, currency),
		CanSubmit:           check.IsBalanced,
	}
	if !check.IsBalanced && check.TotalDebits.IsPositive() {
		v.Warning = "Entry is out of balance by " + utils.FormatAmount(check.Difference)
	}
	return v
}

// DraftResponse is the journal form state after an operation.
type DraftResponse struct {
	Draft   *domain.JournalDraft `json:"draft"`
	Balance BalanceView          `json:"balance"`
}

// ToDraftResponse pairs a draft with its live balance.
func ToDraftResponse(d *domain.JournalDraft, currency string) DraftResponse {
	return DraftResponse{Draft: d, Balance: ToBalanceView(accounting.CheckBalance(d.Lines), currency)}
}

// ValidateJournalResponse is the verdict on a posted journal form.
type ValidateJournalResponse struct {
	Valid   bool                   `json:"valid"`
	Error   string                 `json:"error,omitempty"`
	Balance BalanceView            `json:"balance"`
	Payload *domain.JournalPayload `json:"payload,omitempty"`
}

func sidedAmount(amount decimal.Decimal, currency string) string {
	if !amount.IsPositive() {
		return "-"
	}
	return utils.FormatCurrency(amount, currency)
}
