package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
)

var (
	_ portsrepo.CompanyRepositoryFacade = (*Client)(nil)
	_ portsrepo.UserRepository          = (*Client)(nil)
	_ portsrepo.AuditLogRepository      = (*Client)(nil)
)

type companyEnvelope struct {
	Company domain.Company `json:"company"`
}

func listValues(query domain.ListQuery) url.Values {
	q := url.Values{}
	setIf(q, "search", query.Search)
	pageParams(q, query.Limit, query.Offset)
	return q
}

func (c *Client) ListCompanies(ctx context.Context, token string, query domain.ListQuery) (*domain.CompanyList, error) {
	var out domain.CompanyList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/companies", token: token, query: listValues(query), fallback: "Failed to fetch companies"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FindCompanyByID(ctx context.Context, token, companyID string) (*domain.Company, error) {
	var out companyEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/companies/" + pathID(companyID), token: token, fallback: "Failed to fetch company"}, &out); err != nil {
		return nil, err
	}
	return &out.Company, nil
}

func (c *Client) UpdateMyCompany(ctx context.Context, token string, update domain.CompanyUpdate) (*domain.Company, error) {
	var out companyEnvelope
	if err := c.do(ctx, request{method: http.MethodPatch, path: "/companies/my", token: token, body: update, fallback: "Failed to update company"}, &out); err != nil {
		return nil, err
	}
	return &out.Company, nil
}

func (c *Client) DeleteCompany(ctx context.Context, token, companyID string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/companies/" + pathID(companyID), token: token, fallback: "Failed to delete company"}, nil)
}

func (c *Client) ListAllUsers(ctx context.Context, token string, query domain.ListQuery) (*domain.UserList, error) {
	var out domain.UserList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/all", token: token, query: listValues(query), fallback: "Failed to fetch users"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCompanyUsers(ctx context.Context, token, companyID string, query domain.ListQuery) (*domain.UserList, error) {
	q := listValues(query)
	setIf(q, "companyId", companyID)
	var out domain.UserList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users", token: token, query: q, fallback: "Failed to fetch company users"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FindUserByID(ctx context.Context, token, userID string) (*domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/" + pathID(userID), token: token, fallback: "Failed to get user"}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ListAuditLogs(ctx context.Context, token string, query domain.AuditLogQuery) (*domain.AuditLogList, error) {
	q := url.Values{}
	setIf(q, "companyId", query.CompanyID)
	setIf(q, "entity", query.Entity)
	setIf(q, "action", query.Action)
	setIf(q, "startDate", query.StartDate)
	setIf(q, "endDate", query.EndDate)
	pageParams(q, query.Limit, query.Offset)
	var out domain.AuditLogList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/audit-logs", token: token, query: q, fallback: "Failed to fetch audit logs"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
