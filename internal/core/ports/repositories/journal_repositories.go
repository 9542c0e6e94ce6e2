package repositories

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	ListJournalEntries(ctx context.Context, token, companyID string, query domain.JournalQuery) (*domain.JournalList, error)
	FindJournalEntryByID(ctx context.Context, token, entryID string) (*domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries. The API
// re-validates balance on every write.
type JournalWriter interface {
	CreateJournalEntry(ctx context.Context, token string, payload domain.JournalPayload) (*domain.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, token, entryID string, payload domain.JournalPayload) (*domain.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, token, entryID string) error
}

// JournalRepositoryFacade combines journal reads and writes.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
