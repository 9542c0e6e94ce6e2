package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/dto"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/SscSPs/ledger_dashboard/internal/utils/accounting"
	"github.com/SscSPs/ledger_dashboard/internal/views"
	"github.com/gin-gonic/gin"
)

// journalHandler handles journal entries and the journal form drafts.
type journalHandler struct {
	journalService  portssvc.JournalSvcFacade
	draftService    portssvc.DraftSvc
	registry        *views.Registry
	defaultCurrency string
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade, ds portssvc.DraftSvc, registry *views.Registry, defaultCurrency string) *journalHandler {
	return &journalHandler{
		journalService:  js,
		draftService:    ds,
		registry:        registry,
		defaultCurrency: defaultCurrency,
	}
}

// registerJournalRoutes registers journal entry and draft routes.
func registerJournalRoutes(rg *gin.RouterGroup, h *journalHandler) {
	canDelete := middleware.RequireCapability("delete_journal_entry", func(c domain.Capabilities) bool {
		return c.CanDeleteJournalEntry
	})

	entries := rg.Group("/journal-entries")
	{
		entries.GET("", h.listJournalEntries)
		entries.POST("/validate", h.validateJournalEntry)
		entries.GET("/:entryID", h.getJournalEntry)
		entries.DELETE("/:entryID", canDelete, h.deleteJournalEntry)
	}

	drafts := rg.Group("/journal-drafts")
	{
		drafts.POST("", h.openDraft)
		drafts.GET("/:draftID", h.getDraft)
		drafts.POST("/:draftID/ops", h.applyDraftOperation)
		drafts.POST("/:draftID/submit", h.submitDraft)
		drafts.DELETE("/:draftID", h.discardDraft)
	}
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Pages through the company journal. Searches are debounced per session; a search overtaken by a newer one answers 409.
// @Tags journal
// @Produce json
// @Param q query string false "Search text"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page to show"
// @Param nav query string false "Relative move" Enums(next, prev)
// @Success 200 {object} dto.JournalListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.JournalListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	view := h.registry.Journals(session.ID)
	req := view.Begin(params.FilterKey(), views.Nav(params.Nav), params.Page)
	query := params.ToQuery(req)
	fetch := func(ctx context.Context) (*domain.JournalList, error) {
		return h.journalService.ListJournalEntries(ctx, session, query)
	}

	var list *domain.JournalList
	var err error
	if query.Search != "" {
		list, err = h.registry.JournalSearch(session.ID).Load(c.Request.Context(), fetch)
	} else {
		list, err = fetch(c.Request.Context())
	}
	if err == nil && !view.CommitTotal(req, list.Total) {
		err = views.ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, views.ErrSuperseded) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Superseded by a newer search"})
			return
		}
		view.Abort(req)
		respondError(c, err, "Failed to list journal entries")
		return
	}

	page, hasNext, hasPrev := view.State()
	c.JSON(http.StatusOK, dto.ToJournalListResponse(list, page, hasNext, hasPrev, currencyOf(session, h.defaultCurrency)))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce json
// @Param entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryView
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), session, c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryView(entry, currencyOf(session, h.defaultCurrency)))
}

// deleteJournalEntry godoc
// @Summary Delete a journal entry
// @Tags journal
// @Param entryID path string true "Journal entry ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/{entryID} [delete]
func (h *journalHandler) deleteJournalEntry(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")
	if err := h.journalService.DeleteJournalEntry(c.Request.Context(), session, entryID); err != nil {
		respondError(c, err, "Failed to delete journal entry")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry deleted", slog.String("journal_entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// validateJournalEntry godoc
// @Summary Validate a journal form
// @Description Checks the balance of a posted form without saving it. Returns the submit payload when the form is valid.
// @Tags journal
// @Accept json
// @Produce json
// @Param journal body dto.ValidateJournalRequest true "Journal form"
// @Success 200 {object} dto.ValidateJournalResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/validate [post]
func (h *journalHandler) validateJournalEntry(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.ValidateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	draft := req.ToDraft()
	check, err := h.journalService.ValidateDraft(c.Request.Context(), draft)
	resp := dto.ValidateJournalResponse{
		Valid:   err == nil,
		Balance: dto.ToBalanceView(check, currencyOf(session, h.defaultCurrency)),
	}
	if err != nil {
		resp.Error = err.Error()
	} else {
		payload := accounting.BuildPayload(draft, session.User.CompanyID())
		resp.Payload = &payload
	}
	c.JSON(http.StatusOK, resp)
}

// openDraft godoc
// @Summary Open the journal form
// @Description Starts a draft. With entryId the draft is loaded from the saved entry for editing.
// @Tags journal-drafts
// @Accept json
// @Produce json
// @Param draft body dto.OpenDraftRequest false "Entry to edit"
// @Success 201 {object} dto.DraftResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-drafts [post]
func (h *journalHandler) openDraft(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.OpenDraftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	draft, err := h.draftService.OpenDraft(c.Request.Context(), session, req.EntryID)
	if err != nil {
		respondError(c, err, "Failed to open journal draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft, currencyOf(session, h.defaultCurrency)))
}

// getDraft godoc
// @Summary Get a journal draft
// @Tags journal-drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-drafts/{draftID} [get]
func (h *journalHandler) getDraft(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	draft, err := h.draftService.GetDraft(c.Request.Context(), session, c.Param("draftID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft, currencyOf(session, h.defaultCurrency)))
}

// applyDraftOperation godoc
// @Summary Edit a journal draft
// @Description Applies one edit (add, remove, update, header) and returns the draft with its live balance.
// @Tags journal-drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param op body dto.DraftOperationRequest true "Edit"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-drafts/{draftID}/ops [post]
func (h *journalHandler) applyDraftOperation(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.DraftOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	draft, err := h.draftService.ApplyOperation(c.Request.Context(), session, c.Param("draftID"), req.ToOperation())
	if err != nil {
		respondError(c, err, "Failed to update journal draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft, currencyOf(session, h.defaultCurrency)))
}

// submitDraft godoc
// @Summary Save a journal draft
// @Description Creates or updates the journal entry. The draft is discarded on success and kept on failure.
// @Tags journal-drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.JournalEntryView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-drafts/{draftID}/submit [post]
func (h *journalHandler) submitDraft(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	entry, err := h.draftService.SubmitDraft(c.Request.Context(), session, c.Param("draftID"))
	if err != nil {
		respondError(c, err, "Failed to save journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryView(entry, currencyOf(session, h.defaultCurrency)))
}

// discardDraft godoc
// @Summary Discard a journal draft
// @Tags journal-drafts
// @Param draftID path string true "Draft ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-drafts/{draftID} [delete]
func (h *journalHandler) discardDraft(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.draftService.DiscardDraft(c.Request.Context(), session, c.Param("draftID")); err != nil {
		respondError(c, err, "Failed to discard journal draft")
		return
	}
	c.Status(http.StatusNoContent)
}
