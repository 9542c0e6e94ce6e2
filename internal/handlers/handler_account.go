package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/dto"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles the chart of accounts and its categories.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	categoryService portssvc.CategorySvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, cs portssvc.CategorySvc) *accountHandler {
	return &accountHandler{accountService: as, categoryService: cs}
}

// registerAccountRoutes registers the account and category routes. Writes
// to the chart of accounts require CanManageCategories.
func registerAccountRoutes(rg *gin.RouterGroup, h *accountHandler) {
	canManage := middleware.RequireCapability("manage_categories", func(c domain.Capabilities) bool {
		return c.CanManageCategories
	})

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.POST("", canManage, h.createAccount)
		accounts.PATCH("/:accountID", canManage, h.updateAccount)
		accounts.DELETE("/:accountID", canManage, h.deactivateAccount)
		accounts.POST("/move", canManage, h.moveAccounts)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", canManage, h.createCategory)
		categories.PATCH("/:categoryID", canManage, h.updateCategory)
		categories.DELETE("/:categoryID", canManage, h.deleteCategory)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the accounts of the session's company. Concurrent identical requests share one upstream call.
// @Tags accounts
// @Produce json
// @Param q query string false "Search text"
// @Param accountType query string false "Account type" Enums(ASSET, LIABILITY, EQUITY, INCOME, EXPENSE)
// @Param status query string false "Account status" Enums(ACTIVE, INACTIVE)
// @Param categoryId query string false "Category ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} domain.AccountList
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.accountService.ListAccounts(c.Request.Context(), session, params.ToQuery())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} domain.Account
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	account, err := h.accountService.GetAccount(c.Request.Context(), session, c.Param("accountID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// createAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	account, err := h.accountService.CreateAccount(c.Request.Context(), session, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("account_id", account.ID))
	c.JSON(http.StatusCreated, account)
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	account, err := h.accountService.UpdateAccount(c.Request.Context(), session, c.Param("accountID"), req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Tags accounts
// @Param accountID path string true "Account ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.accountService.DeactivateAccount(c.Request.Context(), session, c.Param("accountID")); err != nil {
		respondError(c, err, "Failed to deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// moveAccounts godoc
// @Summary Move accounts between categories
// @Description A null categoryId moves the accounts to uncategorized.
// @Tags categories
// @Accept json
// @Param move body dto.MoveAccountsRequest true "Accounts and target category"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/move [post]
func (h *accountHandler) moveAccounts(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.MoveAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.categoryService.MoveAccounts(c.Request.Context(), session, req.ToInput()); err != nil {
		respondError(c, err, "Failed to move accounts")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCategories godoc
// @Summary List account categories
// @Tags categories
// @Produce json
// @Success 200 {object} domain.CategoryList
// @Security BearerAuth
// @Router /categories [get]
func (h *accountHandler) listCategories(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	list, err := h.categoryService.ListCategories(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, list)
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category name"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *accountHandler) createCategory(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), session, domain.CategoryInput{Name: req.Name})
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// updateCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.CategoryRequest true "Category name"
// @Success 200 {object} domain.Category
// @Security BearerAuth
// @Router /categories/{categoryID} [patch]
func (h *accountHandler) updateCategory(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.categoryService.UpdateCategory(c.Request.Context(), session, c.Param("categoryID"), domain.CategoryInput{Name: req.Name})
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Accounts in the category become uncategorized.
// @Tags categories
// @Param categoryID path string true "Category ID"
// @Success 204
// @Security BearerAuth
// @Router /categories/{categoryID} [delete]
func (h *accountHandler) deleteCategory(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), session, c.Param("categoryID")); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
