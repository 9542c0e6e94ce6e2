package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultSessionTTL = 24 * time.Hour
	// sessions are re-saved at most this often while in use
	defaultTouchInterval = time.Minute
)

// authService implements the AuthSvc interface
type authService struct {
	BaseService
	authRepo      portsrepo.AuthRepository
	sessionRepo   portsrepo.SessionRepository
	ttl           time.Duration
	touchInterval time.Duration
	now           func() time.Time
	onEnd         []func(sessionID string)
}

// AuthServiceOption is a functional option for configuring the auth service
type AuthServiceOption func(*authService)

// WithSessionTTL sets how long an idle session stays valid.
func WithSessionTTL(ttl time.Duration) AuthServiceOption {
	return func(s *authService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTouchInterval sets how often LastSeenAt is persisted for an active session.
func WithTouchInterval(d time.Duration) AuthServiceOption {
	return func(s *authService) {
		s.touchInterval = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// WithSessionEndHook registers fn to run whenever a session ends.
func WithSessionEndHook(fn func(sessionID string)) AuthServiceOption {
	return func(s *authService) {
		s.onEnd = append(s.onEnd, fn)
	}
}

// NewAuthService creates a new auth service with the provided options
func NewAuthService(authRepo portsrepo.AuthRepository, sessionRepo portsrepo.SessionRepository, options ...AuthServiceOption) portssvc.AuthSvc {
	svc := &authService{
		authRepo:      authRepo,
		sessionRepo:   sessionRepo,
		ttl:           defaultSessionTTL,
		touchInterval: defaultTouchInterval,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperrors.NewValidationError(apperrors.ErrValidation, "Email/username and password are required")
	}

	token, user, err := s.authRepo.Login(ctx, identifier, password)
	if err != nil {
		s.logFailure(ctx, err, "Login rejected", slog.String("identifier", identifier))
		return nil, err
	}

	sessionID, err := utils.NewSessionID()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session ID")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	now := s.now()
	session := domain.Session{
		ID:           sessionID,
		Token:        token,
		User:         *user,
		Capabilities: domain.CapabilitiesFor(user.UserRole),
		CreatedAt:    now,
		LastSeenAt:   now,
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save session", slog.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.LogInfo(ctx, "User logged in",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.UserRole)))
	return &session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.end(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *authService) ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown session: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	now := s.now()
	reason := ""
	switch {
	case now.Sub(session.LastSeenAt) > s.ttl:
		reason = "session idle past TTL"
	case tokenExpired(session.Token, now):
		reason = "API token expired"
	}
	if reason != "" {
		if err := s.end(ctx, sessionID); err != nil {
			s.LogError(ctx, err, "Failed to delete expired session")
		}
		s.LogInfo(ctx, "Session ended", slog.String("reason", reason), slog.String("user_id", session.User.ID))
		return nil, fmt.Errorf("%s: %w", reason, apperrors.ErrUnauthorized)
	}

	if now.Sub(session.LastSeenAt) >= s.touchInterval {
		session.LastSeenAt = now
		if err := s.sessionRepo.SaveSession(ctx, *session); err != nil {
			// the session is still usable; the next request retries
			s.LogError(ctx, err, "Failed to refresh session activity")
		}
	}
	return session, nil
}

func (s *authService) RefreshProfile(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	user, err := s.authRepo.FetchProfile(ctx, session.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			if endErr := s.end(ctx, session.ID); endErr != nil {
				s.LogError(ctx, endErr, "Failed to delete rejected session")
			}
			s.LogInfo(ctx, "API rejected token, session ended", slog.String("user_id", session.User.ID))
			return nil, fmt.Errorf("session rejected by API: %w", apperrors.ErrUnauthorized)
		}
		s.logFailure(ctx, err, "Failed to refresh profile")
		return nil, err
	}
	return s.replaceUser(ctx, session, user)
}

func (s *authService) UpdateProfile(ctx context.Context, session *domain.Session, update domain.ProfileUpdate) (*domain.Session, error) {
	user, err := s.authRepo.UpdateProfile(ctx, session.Token, update)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update profile")
		return nil, err
	}
	return s.replaceUser(ctx, session, user)
}

func (s *authService) ChangePassword(ctx context.Context, session *domain.Session, change domain.PasswordChange) error {
	if change.CurrentPassword == "" {
		return apperrors.NewValidationError(apperrors.ErrValidation, "Current password is required")
	}
	if err := s.authRepo.ChangePassword(ctx, session.Token, change); err != nil {
		s.logFailure(ctx, err, "Failed to change password")
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("user_id", session.User.ID))
	return nil
}

func (s *authService) PurgeExpired(ctx context.Context) (int, error) {
	ids, err := s.sessionRepo.PurgeSessionsBefore(ctx, s.now().Add(-s.ttl))
	if err != nil {
		s.LogError(ctx, err, "Failed to purge sessions")
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	for _, id := range ids {
		for _, fn := range s.onEnd {
			fn(id)
		}
	}
	if len(ids) > 0 {
		s.LogInfo(ctx, "Purged idle sessions", slog.Int("count", len(ids)))
	}
	return len(ids), nil
}

// replaceUser stores a fresh copy of the user on the session. Capabilities
// follow the role the API reports now.
func (s *authService) replaceUser(ctx context.Context, session *domain.Session, user *domain.User) (*domain.Session, error) {
	updated := *session
	updated.User = *user
	updated.Capabilities = domain.CapabilitiesFor(user.UserRole)
	updated.LastSeenAt = s.now()
	if err := s.sessionRepo.SaveSession(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &updated, nil
}

func (s *authService) end(ctx context.Context, sessionID string) error {
	for _, fn := range s.onEnd {
		fn(sessionID)
	}
	return s.sessionRepo.DeleteSession(ctx, sessionID)
}

// tokenExpired reads the exp claim without verifying the signature; the API
// remains the authority. Tokens that are not JWTs never expire locally.
func tokenExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time)
}
