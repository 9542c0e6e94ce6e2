package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/utils/accounting"
)

// draftService implements the DraftSvc interface. Drafts are kept in
// memory only; a restart loses open forms.
type draftService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time

	mu         sync.Mutex
	drafts     map[string]map[string]*domain.JournalDraft // session ID -> draft ID
	submitting map[string]struct{}                        // draft IDs with a save in flight
}

// DraftServiceOption is a functional option for configuring the draft service
type DraftServiceOption func(*draftService)

// WithDraftClock replaces time.Now when dating new drafts.
func WithDraftClock(now func() time.Time) DraftServiceOption {
	return func(s *draftService) {
		s.now = now
	}
}

// NewDraftService creates a new draft service
func NewDraftService(repo portsrepo.JournalRepositoryFacade, options ...DraftServiceOption) portssvc.DraftSvc {
	svc := &draftService{
		journalRepo: repo,
		now:         time.Now,
		drafts:      make(map[string]map[string]*domain.JournalDraft),
		submitting:  make(map[string]struct{}),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DraftSvc = (*draftService)(nil)

func (s *draftService) OpenDraft(ctx context.Context, session *domain.Session, entryID string) (*domain.JournalDraft, error) {
	var draft *domain.JournalDraft
	if entryID == "" {
		draft = domain.NewJournalDraft(s.now().Format(domain.DateLayout))
	} else {
		entry, err := s.journalRepo.FindJournalEntryByID(ctx, session.Token, entryID)
		if err != nil {
			s.logFailure(ctx, err, "Failed to load journal entry for editing", slog.String("journal_entry_id", entryID))
			return nil, err
		}
		draft = domain.HydrateDraft(*entry)
	}

	s.mu.Lock()
	byID, ok := s.drafts[session.ID]
	if !ok {
		byID = make(map[string]*domain.JournalDraft)
		s.drafts[session.ID] = byID
	}
	byID[draft.ID] = draft
	s.mu.Unlock()

	s.LogDebug(ctx, "Draft opened", slog.String("draft_id", draft.ID), slog.String("journal_entry_id", entryID))
	return draft.Clone(), nil
}

func (s *draftService) GetDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.lookup(session.ID, draftID)
	if err != nil {
		return nil, err
	}
	return draft.Clone(), nil
}

func (s *draftService) ApplyOperation(ctx context.Context, session *domain.Session, draftID string, op domain.DraftOperation) (*domain.JournalDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.lookup(session.ID, draftID)
	if err != nil {
		return nil, err
	}

	next := draft.Clone()
	if err := op.ApplyTo(next); err != nil {
		if errors.Is(err, domain.ErrLineIndex) || errors.Is(err, domain.ErrUnknownField) || errors.Is(err, domain.ErrUnknownOperation) {
			return nil, apperrors.NewValidationError(apperrors.ErrValidation, "%s", err.Error())
		}
		return nil, err
	}
	s.drafts[session.ID][draftID] = next
	return next.Clone(), nil
}

func (s *draftService) SubmitDraft(ctx context.Context, session *domain.Session, draftID string) (*domain.JournalEntry, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}
	draft, err := s.claim(session.ID, draftID)
	if err != nil {
		return nil, err
	}
	defer s.release(draftID)

	if err := accounting.ValidateDraft(draft); err != nil {
		s.LogWarn(ctx, "Draft rejected before submit", slog.String("draft_id", draftID), slog.String("error", err.Error()))
		return nil, err
	}

	payload := accounting.BuildPayload(draft, companyID)
	var entry *domain.JournalEntry
	if draft.EntryID == "" {
		entry, err = s.journalRepo.CreateJournalEntry(ctx, session.Token, payload)
	} else {
		entry, err = s.journalRepo.UpdateJournalEntry(ctx, session.Token, draft.EntryID, payload)
	}
	if err != nil {
		// the draft stays open so the user can correct it
		s.logFailure(ctx, err, "Journal entry submission failed", slog.String("draft_id", draftID))
		return nil, err
	}

	s.mu.Lock()
	delete(s.drafts[session.ID], draftID)
	s.mu.Unlock()

	s.LogInfo(ctx, "Journal entry saved",
		slog.String("journal_entry_id", entry.ID),
		slog.Bool("update", draft.EntryID != ""),
		slog.Int("lines", len(payload.Lines)))
	return entry, nil
}

func (s *draftService) DiscardDraft(ctx context.Context, session *domain.Session, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookup(session.ID, draftID); err != nil {
		return err
	}
	delete(s.drafts[session.ID], draftID)
	if len(s.drafts[session.ID]) == 0 {
		delete(s.drafts, session.ID)
	}
	return nil
}

func (s *draftService) DiscardSession(sessionID string) {
	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()
}

// claim marks the draft as being submitted and returns a copy of it. A draft
// already being submitted cannot be claimed again until released.
func (s *draftService) claim(sessionID, draftID string) (*domain.JournalDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.lookup(sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if _, busy := s.submitting[draftID]; busy {
		return nil, fmt.Errorf("draft %s is already being submitted: %w", draftID, apperrors.ErrDuplicate)
	}
	s.submitting[draftID] = struct{}{}
	return draft.Clone(), nil
}

func (s *draftService) release(draftID string) {
	s.mu.Lock()
	delete(s.submitting, draftID)
	s.mu.Unlock()
}

// lookup must be called with mu held.
func (s *draftService) lookup(sessionID, draftID string) (*domain.JournalDraft, error) {
	draft, ok := s.drafts[sessionID][draftID]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
	}
	return draft, nil
}
