package knowledge

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/application/knowledge/usecases"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/utils"
)

// Handler serves the knowledge base endpoints. The help center listing is
// public; everything else is admin-only and enforced at routing time.
type Handler struct {
	addEntry       usecases.AddEntryExecutor
	updateEntry    usecases.UpdateEntryExecutor
	setEntryStatus usecases.SetEntryStatusExecutor
	removeEntry    usecases.RemoveEntryExecutor
	listEntries    usecases.ListEntriesExecutor
	getHelpCenter  usecases.GetHelpCenterExecutor
	logger         logger.Interface
}

func NewHandler(
	addEntry usecases.AddEntryExecutor,
	updateEntry usecases.UpdateEntryExecutor,
	setEntryStatus usecases.SetEntryStatusExecutor,
	removeEntry usecases.RemoveEntryExecutor,
	listEntries usecases.ListEntriesExecutor,
	getHelpCenter usecases.GetHelpCenterExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		addEntry:       addEntry,
		updateEntry:    updateEntry,
		setEntryStatus: setEntryStatus,
		removeEntry:    removeEntry,
		listEntries:    listEntries,
		getHelpCenter:  getHelpCenter,
		logger:         logger,
	}
}

func (h *Handler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.addEntry.Execute(c.Request.Context(), usecases.AddEntryCommand{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, entry, "knowledge entry created")
}

func (h *Handler) UpdateEntry(c *gin.Context) {
	entryID, err := utils.ParseIDParam(c, "id", "knowledge entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.updateEntry.Execute(c.Request.Context(), usecases.UpdateEntryCommand{
		EntryID:  entryID,
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "knowledge entry updated", entry)
}

func (h *Handler) SetEntryStatus(c *gin.Context) {
	entryID, err := utils.ParseIDParam(c, "id", "knowledge entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetEntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.setEntryStatus.Execute(c.Request.Context(), usecases.SetEntryStatusCommand{
		EntryID: entryID,
		Active:  *req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "knowledge entry status updated", entry)
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	entryID, err := utils.ParseIDParam(c, "id", "knowledge entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeEntry.Execute(c.Request.Context(), usecases.RemoveEntryCommand{EntryID: entryID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.listEntries.Execute(c.Request.Context(), usecases.ListEntriesQuery{
		Search: c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "knowledge entries retrieved", entries)
}

// GetHelpCenter returns the active knowledge base grouped by category with
// answers rendered to sanitized HTML. No authentication required.
func (h *Handler) GetHelpCenter(c *gin.Context) {
	categories, err := h.getHelpCenter.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "help center retrieved", categories)
}
