package accounting

import (
	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance is the largest debit/credit difference still treated as balanced.
var Tolerance = decimal.RequireFromString("0.01")

// BalanceCheck is the live verdict shown under the journal form.
type BalanceCheck struct {
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"`
	IsBalanced   bool            `json:"isBalanced"`
}

// CheckBalance totals the lines, counting empty or unparsable amounts as zero.
// An entry with no debits is never balanced.
func CheckBalance(lines []domain.DraftLine) BalanceCheck {
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit.OrZero())
		credits = credits.Add(l.Credit.OrZero())
	}
	diff := debits.Sub(credits).Abs()
	return BalanceCheck{
		TotalDebits:  debits,
		TotalCredits: credits,
		Difference:   diff,
		IsBalanced:   debits.IsPositive() && diff.LessThan(Tolerance),
	}
}

// ValidateDraft gates submission: the date must be a calendar date and the
// lines must balance.
func ValidateDraft(d *domain.JournalDraft) error {
	if d.Date == "" {
		return apperrors.NewValidationError(apperrors.ErrValidation, "Date is required.")
	}
	if _, err := domain.ParseDate(d.Date); err != nil {
		return apperrors.NewValidationError(apperrors.ErrValidation, "Invalid date provided.")
	}
	if !CheckBalance(d.Lines).IsBalanced {
		return apperrors.NewValidationError(apperrors.ErrUnbalanced, "Journal entry must be balanced (Total Debits = Total Credits).")
	}
	return nil
}

// BuildPayloadLines converts draft lines into API lines. Lines with neither a
// positive debit nor a positive credit are dropped.
func BuildPayloadLines(lines []domain.DraftLine) []domain.JournalPayloadLine {
	out := make([]domain.JournalPayloadLine, 0, len(lines))
	for _, l := range lines {
		debit, credit := l.Debit.OrZero(), l.Credit.OrZero()
		if !debit.IsPositive() && !credit.IsPositive() {
			continue
		}
		pl := domain.JournalPayloadLine{
			AccountID:    l.AccountID,
			DebitAmount:  debit.InexactFloat64(),
			CreditAmount: credit.InexactFloat64(),
		}
		if l.Description != "" {
			desc := l.Description
			pl.Description = &desc
		}
		out = append(out, pl)
	}
	return out
}

// BuildPayload converts a validated draft into the create/update body.
func BuildPayload(d *domain.JournalDraft, companyID string) domain.JournalPayload {
	return domain.JournalPayload{
		Date:        domain.DateOnly(d.Date),
		Description: d.Description,
		CompanyID:   companyID,
		Lines:       BuildPayloadLines(d.Lines),
	}
}
