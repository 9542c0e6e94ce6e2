package domain

import "github.com/shopspring/decimal"

// JournalLine is a persisted line of a journal entry as returned by the API.
type JournalLine struct {
	ID           string              `json:"id,omitempty"`
	AccountID    string              `json:"accountId"`
	DebitAmount  decimal.NullDecimal `json:"debitAmount"`
	CreditAmount decimal.NullDecimal `json:"creditAmount"`
	Description  string              `json:"description,omitempty"`
	Account      *AccountRef         `json:"account,omitempty"`
	AuditFields
}

// JournalTotals are the server-computed sums of an entry or a listing.
type JournalTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// JournalEntry is a dated double-entry record.
type JournalEntry struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Description string        `json:"description,omitempty"`
	CompanyID   string        `json:"companyId"`
	Lines       []JournalLine `json:"journalLines,omitempty"`
	Totals      JournalTotals `json:"totals"`
	AuditFields
}

// JournalQuery filters the journal entry listing.
type JournalQuery struct {
	Search    string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

// JournalList is one page of journal entries plus totals across the filter.
type JournalList struct {
	Entries []JournalEntry `json:"entries"`
	Total   int            `json:"total"`
	Totals  JournalTotals  `json:"totals"`
}

// JournalPayloadLine is a line as submitted to the API. Amounts are plain
// numbers; the description is omitted when empty.
type JournalPayloadLine struct {
	AccountID    string  `json:"accountId"`
	DebitAmount  float64 `json:"debitAmount"`
	CreditAmount float64 `json:"creditAmount"`
	Description  *string `json:"description,omitempty"`
}

// JournalPayload is the create/update body sent to the API.
type JournalPayload struct {
	Date        string               `json:"date"`
	Description string               `json:"description"`
	CompanyID   string               `json:"companyId,omitempty"`
	Lines       []JournalPayloadLine `json:"lines"`
}
