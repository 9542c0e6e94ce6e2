package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/utils/accounting"
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new journal service
func NewJournalService(repo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: repo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) ListJournalEntries(ctx context.Context, session *domain.Session, query domain.JournalQuery) (*domain.JournalList, error) {
	companyID, err := s.CompanyOf(session)
	if err != nil {
		return nil, err
	}
	if query.Limit <= 0 {
		query.Limit = domain.JournalPageSize
	}
	filter := domain.ReportFilter{StartDate: query.StartDate, EndDate: query.EndDate}
	if err := filter.Validate(); err != nil {
		s.LogWarn(ctx, "Rejected journal date filter", slog.String("error", err.Error()))
		return nil, err
	}

	list, err := s.journalRepo.ListJournalEntries(ctx, session.Token, companyID, query)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list journal entries", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogDebug(ctx, "Journal entries listed", slog.Int("count", len(list.Entries)), slog.Int("total", list.Total))
	return list, nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, session *domain.Session, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, session.Token, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logFailure(ctx, err, "Failed to get journal entry", slog.String("journal_entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) DeleteJournalEntry(ctx context.Context, session *domain.Session, entryID string) error {
	if err := s.journalRepo.DeleteJournalEntry(ctx, session.Token, entryID); err != nil {
		s.logFailure(ctx, err, "Failed to delete journal entry", slog.String("journal_entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("journal_entry_id", entryID))
	return nil
}

func (s *journalService) ValidateDraft(ctx context.Context, draft *domain.JournalDraft) (accounting.BalanceCheck, error) {
	check := accounting.CheckBalance(draft.Lines)
	if err := accounting.ValidateDraft(draft); err != nil {
		s.LogDebug(ctx, "Draft not submittable", slog.String("reason", err.Error()))
		return check, err
	}
	return check, nil
}
