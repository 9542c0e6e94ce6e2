package repositories

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// AuthRepository exchanges credentials for an API token and manages the
// caller's own profile.
type AuthRepository interface {
	// Login returns the API token and the user it was issued to.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)

	// FetchProfile returns the current user for token.
	FetchProfile(ctx context.Context, token string) (*domain.User, error)

	UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, token string, change domain.PasswordChange) error
}
