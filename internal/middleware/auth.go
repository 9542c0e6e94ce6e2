package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// SessionResolver loads a live session by ID.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionIDFromRequest reads the session ID from a Bearer header or, failing
// that, from the session cookie.
func SessionIDFromRequest(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// RequireSession rejects requests without a live session and stores the
// session and an enriched logger in the request context.
func RequireSession(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		sessionID := SessionIDFromRequest(c, cookieName)
		if sessionID == "" {
			logger.Warn("Session credentials missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		session, err := resolver.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Session rejected", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please log in again."})
				return
			}
			logger.Error("Failed to resolve session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		enriched := logger.With(
			slog.String("user_id", session.User.ID),
			slog.String("company_id", session.User.CompanyID()),
		)
		ctx := WithLogger(WithSession(c.Request.Context(), session), enriched)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireCapability aborts with 403 unless allowed returns true for the
// session's capabilities. Must run after RequireSession.
func RequireCapability(name string, allowed func(domain.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !allowed(session.Capabilities) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Capability denied",
				slog.String("capability", name),
				slog.String("role", string(session.User.UserRole)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}
