package middleware

import (
	"context"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the resolved session.
const sessionKey = contextKey("session")

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the session stored by RequireSession.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	session, ok := c.Request.Context().Value(sessionKey).(*domain.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

// GetUserIDFromContext returns the authenticated user's ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	session, ok := GetSessionFromContext(c)
	if !ok {
		return "", false
	}
	return session.User.ID, true
}
