package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/dto"
	"github.com/SscSPs/ledger_dashboard/internal/export"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/SscSPs/ledger_dashboard/internal/views"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the ledger, trial balance and balance sheet views
// and their exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	exportService    portssvc.ExportSvc
	registry         *views.Registry
	posthog          *utils.PosthogClientWrapper
	defaultCurrency  string
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc, es portssvc.ExportSvc, registry *views.Registry, posthog *utils.PosthogClientWrapper, defaultCurrency string) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		exportService:    es,
		registry:         registry,
		posthog:          posthog,
		defaultCurrency:  defaultCurrency,
		now:              time.Now,
	}
}

// registerReportingRoutes registers the report routes. exportLimit guards
// every export endpoint.
func registerReportingRoutes(rg *gin.RouterGroup, h *reportingHandler, exportLimit gin.HandlerFunc) {
	rg.GET("/ledger", h.getLedger)
	rg.GET("/ledger/export", exportLimit, h.exportLedger)
	rg.GET("/trial-balance", h.getTrialBalance)
	rg.GET("/trial-balance/export", exportLimit, h.exportTrialBalance)
	rg.GET("/balance-sheet", h.getBalanceSheet)
	rg.GET("/balance-sheet/export", exportLimit, h.exportBalanceSheet)
}

// getLedger godoc
// @Summary Account ledger
// @Description One page of an account's postings with server-computed running balances. Dates default to the current month.
// @Tags reports
// @Produce json
// @Param accountId query string true "Account ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page to show"
// @Param nav query string false "Relative move" Enums(next, prev)
// @Success 200 {object} dto.LedgerView
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger [get]
func (h *reportingHandler) getLedger(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	if params.StartDate == "" && params.EndDate == "" {
		params.StartDate, params.EndDate = domain.CurrentMonth(h.now())
	}

	view := h.registry.Ledger(session.ID)
	req := view.Begin(params.FilterKey(), views.Nav(params.Nav), params.Page)
	ledger, err := h.reportingService.Ledger(c.Request.Context(), session, params.ToQuery(req))
	if err != nil {
		view.Abort(req)
		respondError(c, err, "Failed to load ledger")
		return
	}
	if !view.Commit(req, ledger.Pagination.HasNextPage, ledger.Pagination.HasPrevPage) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Superseded by a newer request"})
		return
	}

	page, hasNext, hasPrev := view.State()
	pv := dto.PageView{Page: page, HasNext: hasNext, HasPrev: hasPrev}
	c.JSON(http.StatusOK, dto.ToLedgerView(ledger, pv, currencyOf(session, h.defaultCurrency)))
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Dates default to the current month and status to ACTIVE.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Account status" Enums(ACTIVE, INACTIVE, ALL)
// @Success 200 {object} dto.TrialBalanceView
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c, domain.DefaultMonthFilter)
	if !ok {
		return
	}
	tb, err := h.reportingService.TrialBalance(c.Request.Context(), session, filter)
	if err != nil {
		respondError(c, err, "Failed to load trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceView(tb, currencyOf(session, h.defaultCurrency)))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Dates default to the year to date and status to ACTIVE.
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Account status" Enums(ACTIVE, INACTIVE, ALL)
// @Success 200 {object} dto.BalanceSheetView
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c, domain.DefaultBalanceSheetFilter)
	if !ok {
		return
	}
	bs, err := h.reportingService.BalanceSheet(c.Request.Context(), session, filter)
	if err != nil {
		respondError(c, err, "Failed to load balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetView(bs, currencyOf(session, h.defaultCurrency)))
}

// exportLedger godoc
// @Summary Export a ledger
// @Description Renders the whole filtered ledger, unpaginated. Answers 204 when there are no lines.
// @Tags exports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param accountId query string true "Account ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param format query string false "File format" Enums(pdf, xlsx, csv) default(pdf)
// @Success 200 {file} file
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/export [get]
func (h *reportingHandler) exportLedger(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	format, ok := h.bindFormat(c)
	if !ok {
		return
	}
	if params.StartDate == "" && params.EndDate == "" {
		params.StartDate, params.EndDate = domain.CurrentMonth(h.now())
	}
	file, err := h.exportService.ExportLedger(c.Request.Context(), session, params.ExportQuery(), format)
	h.sendFile(c, "ledger", format, file, err)
}

// exportTrialBalance godoc
// @Summary Export the trial balance
// @Tags exports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Account status" Enums(ACTIVE, INACTIVE, ALL)
// @Param format query string false "File format" Enums(pdf, xlsx, csv) default(pdf)
// @Success 200 {file} file
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /trial-balance/export [get]
func (h *reportingHandler) exportTrialBalance(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c, domain.DefaultMonthFilter)
	if !ok {
		return
	}
	format, ok := h.bindFormat(c)
	if !ok {
		return
	}
	file, err := h.exportService.ExportTrialBalance(c.Request.Context(), session, filter, format)
	h.sendFile(c, "trial_balance", format, file, err)
}

// exportBalanceSheet godoc
// @Summary Export the balance sheet
// @Tags exports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param status query string false "Account status" Enums(ACTIVE, INACTIVE, ALL)
// @Param format query string false "File format" Enums(pdf, xlsx, csv) default(pdf)
// @Success 200 {file} file
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet/export [get]
func (h *reportingHandler) exportBalanceSheet(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	filter, ok := h.bindFilter(c, domain.DefaultBalanceSheetFilter)
	if !ok {
		return
	}
	format, ok := h.bindFormat(c)
	if !ok {
		return
	}
	file, err := h.exportService.ExportBalanceSheet(c.Request.Context(), session, filter, format)
	h.sendFile(c, "balance_sheet", format, file, err)
}

// bindFilter binds the report params, filling missing dates from defaults.
func (h *reportingHandler) bindFilter(c *gin.Context, defaults func(time.Time) domain.ReportFilter) (domain.ReportFilter, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return domain.ReportFilter{}, false
	}
	filter := params.ToFilter()
	if filter.StartDate == "" && filter.EndDate == "" {
		d := defaults(h.now())
		filter.StartDate, filter.EndDate = d.StartDate, d.EndDate
	}
	return filter, true
}

func (h *reportingHandler) bindFormat(c *gin.Context) (export.Format, bool) {
	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return "", false
	}
	format, err := params.ToFormat()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return "", false
	}
	return format, true
}

// sendFile answers with the rendered file as an attachment, or 204 when the
// report had nothing to export.
func (h *reportingHandler) sendFile(c *gin.Context, report string, format export.Format, file *export.File, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, export.ErrEmpty) {
		logger.Info("Nothing to export", slog.String("report", report))
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		respondError(c, err, "Failed to export report")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "report_exported", map[string]any{
		"report": report,
		"format": string(format),
		"rows":   file.Rows,
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
