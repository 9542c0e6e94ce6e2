package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

const generatedLayout = "2006-01-02"

var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-", "\"", "", ":", "-")

func fileName(parts ...string) string {
	return fileNameReplacer.Replace(strings.Join(parts, "_"))
}

func money(amount decimal.Decimal, currency string) Cell {
	return MoneyCell(utils.FormatCurrencyForExport(amount, currency), amount)
}

// sided renders a one-sided amount, "-" unless positive.
func sided(amount decimal.Decimal, currency string) Cell {
	if !amount.IsPositive() {
		return Cell{Text: "-", Value: &amount}
	}
	return money(amount, currency)
}

// LedgerDocument lays out a full (unpaginated) account ledger followed by a
// TOTALS row built from the server totals.
func LedgerDocument(ledger *domain.LedgerResponse, currency, startDate, endDate string, generated time.Time) (*Document, error) {
	if ledger == nil || len(ledger.Lines) == 0 {
		return nil, ErrEmpty
	}
	rows := make([][]Cell, 0, len(ledger.Lines))
	for _, line := range ledger.Lines {
		rows = append(rows, []Cell{
			TextCell(domain.DateOnly(line.Date)),
			TextCell(line.Reference()),
			TextCell(line.DisplayDescription()),
			sided(line.DebitAmount, currency),
			sided(line.CreditAmount, currency),
			money(line.Balance, currency),
		})
	}
	totals := []Cell{
		TextCell(""),
		TextCell(""),
		TextCell("TOTALS"),
		money(ledger.Totals.Debit, currency),
		money(ledger.Totals.Credit, currency),
		money(ledger.Totals.Net, currency),
	}

	name := ledger.Account.Name
	return &Document{
		Sheet:    "Ledger",
		FileName: fileName("Ledger", name, startDate, endDate),
		Title: []string{
			fmt.Sprintf("Account: %s", name),
			fmt.Sprintf("Period: %s to %s", startDate, endDate),
			fmt.Sprintf("Generated: %s", generated.Format(generatedLayout)),
		},
		Sections: []Section{{
			Header: []string{"Date", "Ref", "Description", "Debit", "Credit", "Balance"},
			Rows:   rows,
			Footer: [][]Cell{totals},
		}},
		Widths: []float64{12, 15, 40, 12, 12, 12},
	}, nil
}

// TrialBalanceDocument lays out the trial balance with one debit or credit
// balance per account and a TOTALS row.
func TrialBalanceDocument(tb *domain.TrialBalanceResponse, companyName, currency, startDate, endDate string, generated time.Time) (*Document, error) {
	if tb == nil || len(tb.Accounts) == 0 {
		return nil, ErrEmpty
	}
	if companyName == "" {
		companyName = "Company"
	}
	rows := make([][]Cell, 0, len(tb.Accounts))
	for _, acc := range tb.Accounts {
		rows = append(rows, []Cell{
			TextCell(acc.Name),
			TextCell(string(acc.AccountType)),
			sided(acc.DebitBalance, currency),
			sided(acc.CreditBalance, currency),
		})
	}
	return &Document{
		Sheet:    "TrialBalance",
		FileName: fileName("TrialBalance", startDate, endDate),
		Title: []string{
			fmt.Sprintf("Trial Balance: %s", companyName),
			fmt.Sprintf("Period: %s to %s", startDate, endDate),
			fmt.Sprintf("Generated: %s", generated.Format(generatedLayout)),
		},
		Sections: []Section{{
			Header: []string{"Account", "Type", "Debit Balance", "Credit Balance"},
			Rows:   rows,
			Footer: [][]Cell{{
				TextCell("TOTALS"),
				TextCell(""),
				money(tb.Totals.DebitBalance, currency),
				money(tb.Totals.CreditBalance, currency),
			}},
		}},
		Widths: []float64{30, 15, 15, 15},
	}, nil
}

// BalanceSheetDocument lays out Assets, Liabilities and Equity followed by
// the accounting equation check. Balanced is the server's flag.
func BalanceSheetDocument(bs *domain.BalanceSheetResponse, companyName, currency string, generated time.Time) (*Document, error) {
	if bs == nil || bs.IsEmpty() {
		return nil, ErrEmpty
	}
	title := []string{companyName, "Balance Sheet", fmt.Sprintf("Generated on: %s", generated.Format(generatedLayout))}
	if bs.Filters.StartDate != "" || bs.Filters.EndDate != "" {
		start, end := bs.Filters.StartDate, bs.Filters.EndDate
		if start == "" {
			start = "Start"
		}
		if end == "" {
			end = "End"
		}
		title = append(title, fmt.Sprintf("Period: %s to %s", domain.DateOnly(start), domain.DateOnly(end)))
	}

	named := []struct {
		title   string
		section domain.BalanceSheetSection
	}{
		{"Assets", bs.Assets},
		{"Liabilities", bs.Liabilities},
		{"Equity", bs.Equity},
	}
	sections := make([]Section, 0, len(named)+1)
	for _, n := range named {
		rows := make([][]Cell, 0, len(n.section.Accounts))
		for _, acc := range n.section.Accounts {
			rows = append(rows, []Cell{TextCell(acc.Name), money(acc.Balance, currency)})
		}
		sections = append(sections, Section{
			Heading: n.title,
			Header:  []string{"Account", "Balance"},
			Rows:    rows,
			Footer:  [][]Cell{{TextCell("Total " + n.title), money(n.section.Total, currency)}},
		})
	}

	balanced := "NO"
	if bs.Totals.EquationBalanced {
		balanced = "YES"
	}
	sections = append(sections, Section{
		Heading: "Accounting Equation Check",
		Footer: [][]Cell{
			{TextCell("Total Assets"), money(bs.Totals.Assets, currency)},
			{TextCell("Total Liab + Equity"), money(bs.LiabilitiesAndEquity(), currency)},
			{TextCell("Balanced"), TextCell(balanced)},
		},
	})

	return &Document{
		Sheet:    "BalanceSheet",
		FileName: "BalanceSheet",
		Title:    title,
		Sections: sections,
		Widths:   []float64{40, 20},
		Grid:     true,
	}, nil
}
