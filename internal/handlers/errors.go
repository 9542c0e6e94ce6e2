package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError answers with the status err maps to. Local validation messages
// and API error text are passed through verbatim; anything else gets fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusFor(err)

	message := fallback
	var apiErr *apperrors.APIError
	var valErr *apperrors.ValidationError
	switch {
	case errors.As(err, &apiErr):
		message = apiErr.Message
	case errors.As(err, &valErr):
		message = valErr.Message
	case errors.Is(err, apperrors.ErrUnauthorized):
		message = "Session expired. Please log in again."
	case errors.Is(err, apperrors.ErrForbidden):
		message = "You do not have permission to perform this action"
	case errors.Is(err, apperrors.ErrNotFound):
		message = "Not found"
	case errors.Is(err, apperrors.ErrNoCompany):
		message = "Your account is not attached to a company"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: message})
}

// respondBindError answers 400 for a request that failed binding, listing
// the offending fields when the validator produced them.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonName(fe.Field())] = validationMessage(fe)
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request", Fields: fields})
}

var tagNamesOnce sync.Once

// useWireFieldNames makes validator errors name fields by their json or form
// tag, so the fields map matches what the client sent.
func useWireFieldNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return ""
		})
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	}
	return "is invalid"
}

// jsonName lower-cases the first rune of a field name for structs without tags.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
