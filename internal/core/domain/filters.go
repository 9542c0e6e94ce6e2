package domain

import (
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
)

// StatusFilter selects accounts by status on report endpoints. StatusAll
// means no status parameter is sent.
type StatusFilter string

const (
	StatusFilterActive   StatusFilter = "ACTIVE"
	StatusFilterInactive StatusFilter = "INACTIVE"
	StatusFilterAll      StatusFilter = "ALL"
)

// Param returns the query value to send, or "" for StatusAll.
func (s StatusFilter) Param() string {
	if s == StatusFilterAll || s == "" {
		return ""
	}
	return string(s)
}

// ReportFilter is the date range and status shared by the reports.
type ReportFilter struct {
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Status    StatusFilter `json:"status"`
}

// Validate checks the filter before anything is fetched. Empty dates are
// allowed and mean "unbounded".
func (f ReportFilter) Validate() error {
	var start, end time.Time
	var err error
	if f.StartDate != "" {
		if start, err = ParseDate(f.StartDate); err != nil {
			return apperrors.NewValidationError(apperrors.ErrInvalidDateRange, "Invalid start date provided.")
		}
	}
	if f.EndDate != "" {
		if end, err = ParseDate(f.EndDate); err != nil {
			return apperrors.NewValidationError(apperrors.ErrInvalidDateRange, "Invalid end date provided.")
		}
	}
	if f.StartDate != "" && f.EndDate != "" && start.After(end) {
		return apperrors.NewValidationError(apperrors.ErrInvalidDateRange, "Start date cannot be after end date.")
	}
	switch f.Status {
	case "", StatusFilterActive, StatusFilterInactive, StatusFilterAll:
	default:
		return apperrors.NewValidationError(apperrors.ErrValidation, "Invalid status %q.", f.Status)
	}
	return nil
}

// CurrentMonth returns the first and last day of now's month.
func CurrentMonth(now time.Time) (string, string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// YearToDate returns January 1st of now's year and now.
func YearToDate(now time.Time) (string, string) {
	first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return first.Format(DateLayout), now.Format(DateLayout)
}

// DefaultMonthFilter is the initial filter of the ledger and trial balance.
func DefaultMonthFilter(now time.Time) ReportFilter {
	start, end := CurrentMonth(now)
	return ReportFilter{StartDate: start, EndDate: end, Status: StatusFilterActive}
}

// DefaultBalanceSheetFilter is the initial filter of the balance sheet.
func DefaultBalanceSheetFilter(now time.Time) ReportFilter {
	start, end := YearToDate(now)
	return ReportFilter{StartDate: start, EndDate: end, Status: StatusFilterActive}
}
