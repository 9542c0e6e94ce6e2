package services

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/utils/accounting"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	ListJournalEntries(ctx context.Context, session *domain.Session, query domain.JournalQuery) (*domain.JournalList, error)
	GetJournalEntry(ctx context.Context, session *domain.Session, entryID string) (*domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	DeleteJournalEntry(ctx context.Context, session *domain.Session, entryID string) error
}

// JournalValidatorSvc checks a draft without any API call.
type JournalValidatorSvc interface {
	// ValidateDraft returns the balance check and, when the draft cannot be
	// submitted, the reason.
	ValidateDraft(ctx context.Context, draft *domain.JournalDraft) (accounting.BalanceCheck, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalValidatorSvc
}

// DraftSvc owns the in-memory drafts behind the create/edit journal form.
// Drafts are scoped to the session that opened them.
type DraftSvc interface {
	// OpenDraft starts a draft; a non-empty entryID hydrates it from the API.
	OpenDraft(ctx context.Context, session *domain.Session, entryID string) (*domain.JournalDraft, error)
	GetDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalDraft, error)
	ApplyOperation(ctx context.Context, session *domain.Session, draftID string, op domain.DraftOperation) (*domain.JournalDraft, error)

	// SubmitDraft validates, creates or updates the entry, and discards the
	// draft on success. A failed submission keeps the draft.
	SubmitDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalEntry, error)
	DiscardDraft(ctx context.Context, session *domain.Session, draftID string) error

	// DiscardSession drops every draft of a session.
	DiscardSession(sessionID string)
}
