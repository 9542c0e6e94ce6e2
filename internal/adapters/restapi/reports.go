package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
)

var _ portsrepo.ReportingRepository = (*Client)(nil)

func (c *Client) GetLedger(ctx context.Context, token, companyID string, query domain.LedgerQuery) (*domain.LedgerResponse, error) {
	q := url.Values{}
	q.Set("companyId", companyID)
	q.Set("accountId", query.AccountID)
	setIf(q, "startDate", query.StartDate)
	setIf(q, "endDate", query.EndDate)
	if query.All {
		q.Set("all", "true")
	} else {
		pageParams(q, query.Limit, query.Offset)
	}

	var out domain.LedgerResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/ledger", token: token, query: q, fallback: "Failed to fetch ledger"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func filterValues(companyID string, filter domain.ReportFilter) url.Values {
	q := url.Values{}
	q.Set("companyId", companyID)
	setIf(q, "startDate", filter.StartDate)
	setIf(q, "endDate", filter.EndDate)
	setIf(q, "status", filter.Status.Param())
	return q
}

func (c *Client) GetTrialBalance(ctx context.Context, token, companyID string, filter domain.ReportFilter) (*domain.TrialBalanceResponse, error) {
	var out domain.TrialBalanceResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/trial-balance", token: token, query: filterValues(companyID, filter), fallback: "Failed to fetch trial balance"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBalanceSheet(ctx context.Context, token, companyID string, filter domain.ReportFilter) (*domain.BalanceSheetResponse, error) {
	var out domain.BalanceSheetResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: "/balance-sheet", token: token, query: filterValues(companyID, filter), fallback: "Failed to load balance sheet"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCompanySummary(ctx context.Context, token, companyID, startDate, endDate string) (*domain.CompanySummary, error) {
	q := url.Values{}
	setIf(q, "companyId", companyID)
	setIf(q, "startDate", startDate)
	setIf(q, "endDate", endDate)
	var out domain.CompanySummary
	if err := c.do(ctx, request{method: http.MethodGet, path: "/dashboard/company/summary", token: token, query: q, fallback: "Failed to fetch company summary"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
