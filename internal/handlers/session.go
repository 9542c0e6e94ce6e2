package handlers

import (
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionOrAbort returns the request's session, answering 401 when the
// route was mounted without RequireSession.
func sessionOrAbort(c *gin.Context) (*domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return nil, false
	}
	return session, true
}

// currencyOf is the company currency of the session, or fallback when the
// company has none.
func currencyOf(session *domain.Session, fallback string) string {
	if code := session.User.Currency(); code != "" {
		return code
	}
	return fallback
}
