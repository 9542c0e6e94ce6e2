package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
)

var _ portsrepo.JournalRepositoryFacade = (*Client)(nil)

type entryEnvelope struct {
	Entry domain.JournalEntry `json:"entry"`
}

func (c *Client) ListJournalEntries(ctx context.Context, token, companyID string, query domain.JournalQuery) (*domain.JournalList, error) {
	q := url.Values{}
	q.Set("companyId", companyID)
	setIf(q, "q", query.Search)
	setIf(q, "startDate", query.StartDate)
	setIf(q, "endDate", query.EndDate)
	pageParams(q, query.Limit, query.Offset)

	var out domain.JournalList
	if err := c.do(ctx, request{method: http.MethodGet, path: "/journal-entries", token: token, query: q, fallback: "Failed to fetch journal entries"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FindJournalEntryByID(ctx context.Context, token, entryID string) (*domain.JournalEntry, error) {
	var out entryEnvelope
	if err := c.do(ctx, request{method: http.MethodGet, path: "/journal-entries/" + pathID(entryID), token: token, fallback: "Failed to fetch journal entry"}, &out); err != nil {
		return nil, err
	}
	return &out.Entry, nil
}

func (c *Client) CreateJournalEntry(ctx context.Context, token string, payload domain.JournalPayload) (*domain.JournalEntry, error) {
	var out entryEnvelope
	if err := c.do(ctx, request{method: http.MethodPost, path: "/journal-entries", token: token, body: payload, fallback: "Failed to create journal entry"}, &out); err != nil {
		return nil, err
	}
	return &out.Entry, nil
}

func (c *Client) UpdateJournalEntry(ctx context.Context, token, entryID string, payload domain.JournalPayload) (*domain.JournalEntry, error) {
	var out entryEnvelope
	if err := c.do(ctx, request{method: http.MethodPatch, path: "/journal-entries/" + pathID(entryID), token: token, body: payload, fallback: "Failed to update journal entry"}, &out); err != nil {
		return nil, err
	}
	return &out.Entry, nil
}

// DeleteJournalEntry removes an entry. The API answers 204 with no body.
func (c *Client) DeleteJournalEntry(ctx context.Context, token, entryID string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/journal-entries/" + pathID(entryID), token: token, fallback: "Failed to delete journal entry"}, nil)
}
