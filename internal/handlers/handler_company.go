package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/dto"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles tenant administration, audit logs and the dashboard summary.
type companyHandler struct {
	companyService  portssvc.CompanySvc
	defaultCurrency string
	now             func() time.Time
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvc, defaultCurrency string) *companyHandler {
	return &companyHandler{companyService: cs, defaultCurrency: defaultCurrency, now: time.Now}
}

// registerCompanyRoutes registers company, user, audit log and dashboard routes.
func registerCompanyRoutes(rg *gin.RouterGroup, h *companyHandler) {
	canManageCompanies := middleware.RequireCapability("manage_companies", func(c domain.Capabilities) bool {
		return c.CanManageCompanies
	})
	canDeleteCompany := middleware.RequireCapability("delete_company", func(c domain.Capabilities) bool {
		return c.CanDeleteCompany
	})
	canEditOwnCompany := middleware.RequireCapability("edit_own_company", func(c domain.Capabilities) bool {
		return c.CanEditOwnCompany
	})
	canListUsers := middleware.RequireCapability("manage_users", func(c domain.Capabilities) bool {
		return c.CanManageAllUsers || c.CanManageCompanyUsers
	})
	canViewAuditLogs := middleware.RequireCapability("view_audit_logs", func(c domain.Capabilities) bool {
		return c.CanViewAuditLogs
	})
	canViewBooks := middleware.RequireCapability("view_books", func(c domain.Capabilities) bool {
		return c.CanViewBooks
	})

	companies := rg.Group("/companies")
	{
		companies.GET("", canManageCompanies, h.listCompanies)
		companies.PATCH("/my", canEditOwnCompany, h.updateMyCompany)
		companies.GET("/:companyID", h.getCompany)
		companies.DELETE("/:companyID", canDeleteCompany, h.deleteCompany)
	}

	users := rg.Group("/users", canListUsers)
	{
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
	}

	rg.GET("/audit-logs", canViewAuditLogs, h.listAuditLogs)
	rg.GET("/dashboard/summary", canViewBooks, h.summary)
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} domain.CompanyList
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.companyService.ListCompanies(c.Request.Context(), session, params.ToQuery())
	if err != nil {
		respondError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} domain.Company
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	company, err := h.companyService.GetCompany(c.Request.Context(), session, c.Param("companyID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// updateMyCompany godoc
// @Summary Update the caller's company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CompanyUpdateRequest true "Fields to update"
// @Success 200 {object} domain.Company
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/my [patch]
func (h *companyHandler) updateMyCompany(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	company, err := h.companyService.UpdateMyCompany(c.Request.Context(), session, req.ToUpdate())
	if err != nil {
		respondError(c, err, "Failed to update company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// deleteCompany godoc
// @Summary Delete a company
// @Tags companies
// @Param companyID path string true "Company ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{companyID} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	if err := h.companyService.DeleteCompany(c.Request.Context(), session, companyID); err != nil {
		respondError(c, err, "Failed to delete company")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Company deleted", slog.String("deleted_company_id", companyID))
	c.Status(http.StatusNoContent)
}

// listUsers godoc
// @Summary List users
// @Description Platform admins see every user; company admins see their company's users.
// @Tags users
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} domain.UserList
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *companyHandler) listUsers(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.companyService.ListUsers(c.Request.Context(), session, params.ToQuery())
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *companyHandler) getUser(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	user, err := h.companyService.GetUser(c.Request.Context(), session, c.Param("userID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// listAuditLogs godoc
// @Summary List audit logs
// @Description The companyId filter only applies to platform admins.
// @Tags audit
// @Produce json
// @Param companyId query string false "Company ID"
// @Param entity query string false "Entity"
// @Param action query string false "Action"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} domain.AuditLogList
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *companyHandler) listAuditLogs(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.AuditLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.companyService.ListAuditLogs(c.Request.Context(), session, params.ToQuery())
	if err != nil {
		respondError(c, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, list)
}

// summary godoc
// @Summary Dashboard summary
// @Description Revenue, expense and net profit for the period; defaults to the current month.
// @Tags dashboard
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryView
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *companyHandler) summary(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	if params.StartDate == "" && params.EndDate == "" {
		params.StartDate, params.EndDate = domain.CurrentMonth(h.now())
	}
	summary, err := h.companyService.Summary(c.Request.Context(), session, params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err, "Failed to load dashboard summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryView(summary, currencyOf(session, h.defaultCurrency)))
}
