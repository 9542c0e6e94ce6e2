package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_dashboard/cmd/docs"
	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/SscSPs/ledger_dashboard/internal/platform/config"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/SscSPs/ledger_dashboard/internal/views"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	registry *views.Registry,
	posthog *utils.PosthogClientWrapper,
) error {
	useWireFieldNames()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services, registry, posthog); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	registry *views.Registry,
	posthog *utils.PosthogClientWrapper,
) error {
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	exportLimiter, err := middleware.NewLimiter(cfg.ExportRateLimit)
	if err != nil {
		return fmt.Errorf("export rate limit: %w", err)
	}

	public := r.Group("/api/v1")
	protected := public.Group("",
		middleware.RequireSession(services.Auth, cfg.SessionCookieName),
		middleware.PosthogMiddleware(posthog),
	)

	registerAuthRoutes(public, protected, newAuthHandler(services.Auth, cfg), middleware.RateLimit(loginLimiter))
	registerCompanyRoutes(protected, newCompanyHandler(services.Company, cfg.DefaultCurrency))

	// Everything below reads or writes the company books.
	books := protected.Group("", middleware.RequireCapability("view_books", func(c domain.Capabilities) bool {
		return c.CanViewBooks
	}))
	registerAccountRoutes(books, newAccountHandler(services.Account, services.Category))
	registerJournalRoutes(books, newJournalHandler(services.Journal, services.Draft, registry, cfg.DefaultCurrency))
	registerReportingRoutes(books,
		newReportingHandler(services.Reporting, services.Export, registry, posthog, cfg.DefaultCurrency),
		middleware.RateLimit(exportLimiter))
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
