package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CompanyOf returns the company the session works in. Users without a
// company (platform admins) get ErrNoCompany for company-scoped operations.
func (s *BaseService) CompanyOf(session *domain.Session) (string, error) {
	if session == nil {
		return "", apperrors.ErrUnauthorized
	}
	companyID := session.User.CompanyID()
	if companyID == "" {
		return "", apperrors.ErrNoCompany
	}
	return companyID, nil
}

// logFailure logs err unless it is an expected outcome the caller reports
// to the user (not found, validation, API-side rejection).
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	var apiErr *apperrors.APIError
	var valErr *apperrors.ValidationError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status < 500:
		s.LogWarn(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
	case errors.As(err, &valErr):
		s.LogWarn(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}
