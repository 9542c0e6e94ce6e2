package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
)

var (
	_ portsrepo.AccountRepositoryFacade  = (*Client)(nil)
	_ portsrepo.CategoryRepositoryFacade = (*Client)(nil)
)

type accountEnvelope struct {
	Account domain.Account `json:"account"`
}

type categoryEnvelope struct {
	Category domain.Category `json:"category"`
}

// ListAccounts lists accounts of a company. A zero limit asks for all of them.
func (c *Client) ListAccounts(ctx context.Context, token, companyID string, query domain.AccountQuery) (*domain.AccountList, error) {
	q := url.Values{}
	q.Set("companyId", companyID)
	setIf(q, "search", query.Search)
	setIf(q, "accountType", string(query.AccountType))
	setIf(q, "status", string(query.Status))
	setIf(q, "categoryId", query.CategoryID)
	if query.Limit == 0 {
		q.Set("all", "true")
	}
	pageParams(q, query.Limit, query.Offset)

	var out domain.AccountList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/accounts", token: token, query: q, fallback: "Failed to fetch accounts"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FindAccountByID(ctx context.Context, token, accountID string) (*domain.Account, error) {
	var out accountEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/accounts/" + pathID(accountID), token: token, fallback: "Failed to fetch account"}, &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

func (c *Client) CreateAccount(ctx context.Context, token string, input domain.AccountInput) (*domain.Account, error) {
	var out accountEnvelope
	if err := c.do(ctx, request{method: http.MethodPost, path: "/accounts", token: token, body: input, fallback: "Failed to create account"}, &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, token, accountID string, input domain.AccountInput) (*domain.Account, error) {
	var out accountEnvelope
	if err := c.do(ctx, request{method: http.MethodPatch, path: "/accounts/" + pathID(accountID), token: token, body: input, fallback: "Failed to update account"}, &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

func (c *Client) DeactivateAccount(ctx context.Context, token, accountID string) error {
	return c.do(ctx, request{method: http.MethodPatch, path: "/accounts/" + pathID(accountID) + "/deactivate", token: token, fallback: "Failed to deactivate account"}, nil)
}

func (c *Client) ListCategories(ctx context.Context, token, companyID string) (*domain.CategoryList, error) {
	q := url.Values{}
	q.Set("companyId", companyID)
	var out domain.CategoryList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/account-categories", token: token, query: q, fallback: "Failed to fetch categories"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, input domain.CategoryInput) (*domain.Category, error) {
	var out categoryEnvelope
	if err := c.do(ctx, request{method: http.MethodPost, path: "/account-categories", token: token, body: input, fallback: "Failed to create category"}, &out); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token, categoryID string, input domain.CategoryInput) (*domain.Category, error) {
	var out categoryEnvelope
	if err := c.do(ctx, request{method: http.MethodPatch, path: "/account-categories/" + pathID(categoryID), token: token, body: input, fallback: "Failed to update category"}, &out); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, categoryID string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/account-categories/" + pathID(categoryID), token: token, fallback: "Failed to delete category"}, nil)
}

func (c *Client) MoveAccounts(ctx context.Context, token string, input domain.MoveAccountsInput) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/account-categories/move", token: token, body: input, fallback: "Failed to move accounts"}, nil)
}
