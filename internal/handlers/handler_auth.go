package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/dto"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/SscSPs/ledger_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout and the signed-in user's profile.
type authHandler struct {
	authService portssvc.AuthSvc
	cookieName  string
	cookieTTL   int
	secure      bool
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(authService portssvc.AuthSvc, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: authService,
		cookieName:  cfg.SessionCookieName,
		cookieTTL:   int(cfg.SessionTTL.Seconds()),
		secure:      cfg.IsProduction,
	}
}

// registerAuthRoutes registers the public login route and the session-bound
// auth routes.
func registerAuthRoutes(public, protected *gin.RouterGroup, h *authHandler, loginLimit gin.HandlerFunc) {
	public.POST("/auth/login", loginLimit, h.login)

	auth := protected.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.getMe)
		auth.PATCH("/me", h.updateMe)
		auth.POST("/change-password", h.changePassword)
	}
}

// login godoc
// @Summary Log in
// @Description Authenticates against the accounting API and opens a dashboard session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.ID, h.cookieTTL, "/", "", h.secure, true)
	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

// logout godoc
// @Summary Log out
// @Description Ends the dashboard session and discards any open journal drafts.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), session.ID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	h.clearCookie(c)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged out")
	c.Status(http.StatusNoContent)
}

// getMe godoc
// @Summary Current user
// @Description Refreshes the profile from the accounting API. A rejected token ends the session.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) getMe(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	refreshed, err := h.authService.RefreshProfile(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			h.clearCookie(c)
		}
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(refreshed))
}

// updateMe godoc
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body dto.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [patch]
func (h *authHandler) updateMe(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	updated, err := h.authService.UpdateProfile(c.Request.Context(), session, req.ToProfileUpdate())
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(updated))
}

// changePassword godoc
// @Summary Change password
// @Description The new password must match its confirmation and be at least 8 characters.
// @Tags auth
// @Accept json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid password")
		return
	}
	if err := h.authService.ChangePassword(c.Request.Context(), session, req.ToPasswordChange()); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Password changed", slog.String("user_id", session.User.ID))
	c.Status(http.StatusNoContent)
}

func (h *authHandler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
}
