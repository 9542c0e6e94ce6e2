package services

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// AuthSvc manages dashboard sessions backed by API tokens.
type AuthSvc interface {
	// Login exchanges credentials for an API token and opens a session.
	Login(ctx context.Context, identifier, password string) (*domain.Session, error)

	// Logout deletes the session. Unknown IDs are not an error.
	Logout(ctx context.Context, sessionID string) error

	// ResolveSession returns a live session. Sessions past their TTL or whose
	// API token has expired are deleted and reported as ErrUnauthorized.
	ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// RefreshProfile re-reads the current user from the API. A 401 from the
	// API ends the session.
	RefreshProfile(ctx context.Context, session *domain.Session) (*domain.Session, error)

	UpdateProfile(ctx context.Context, session *domain.Session, update domain.ProfileUpdate) (*domain.Session, error)
	ChangePassword(ctx context.Context, session *domain.Session, change domain.PasswordChange) error

	// PurgeExpired removes sessions idle longer than the TTL.
	PurgeExpired(ctx context.Context) (int, error)
}
