package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// SessionRepository persists dashboard sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, session domain.Session) error
	// FindSession returns apperrors.ErrNotFound for unknown IDs.
	FindSession(ctx context.Context, id string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	// PurgeSessionsBefore removes sessions last seen before cutoff and
	// returns their IDs.
	PurgeSessionsBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}
