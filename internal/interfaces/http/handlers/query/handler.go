package query

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
	"github.com/ecoride/helpdesk/internal/application/query/usecases"
	"github.com/ecoride/helpdesk/internal/shared/authorization"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/utils"
)

// Handler serves the customer query endpoints. Submit/get/list are available
// to customers; respond and close are admin operations wired behind the
// admin route group.
type Handler struct {
	submitQuery    usecases.SubmitQueryExecutor
	respondToQuery usecases.RespondToQueryExecutor
	closeQuery     usecases.CloseQueryExecutor
	getQuery       usecases.GetQueryExecutor
	listQueries    usecases.ListQueriesExecutor
	logger         logger.Interface
}

func NewHandler(
	submitQuery usecases.SubmitQueryExecutor,
	respondToQuery usecases.RespondToQueryExecutor,
	closeQuery usecases.CloseQueryExecutor,
	getQuery usecases.GetQueryExecutor,
	listQueries usecases.ListQueriesExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitQuery:    submitQuery,
		respondToQuery: respondToQuery,
		closeQuery:     closeQuery,
		getQuery:       getQuery,
		listQueries:    listQueries,
		logger:         logger,
	}
}

func (h *Handler) SubmitQuery(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)

	var req SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.SubmitQueryCommand{
		CustomerID: userID,
		QueryText:  req.QueryText,
	}
	if req.Attachment != nil {
		if err := utils.ValidateAttachmentURL(req.Attachment.FileURL); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.Attachment = &dto.AttachmentDTO{
			FileName: req.Attachment.FileName,
			FileURL:  req.Attachment.FileURL,
		}
	}

	result, err := h.submitQuery.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "query submitted")
}

func (h *Handler) GetQuery(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)
	role := authorization.ParseUserRole(c.GetString(authorization.ContextKeyUserRole))

	queryID, err := utils.ParseIDParam(c, "id", "query")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getQuery.Execute(c.Request.Context(), usecases.GetQueryQuery{
		QueryID:     queryID,
		RequesterID: userID,
		IsAdmin:     role.IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "query retrieved", result)
}

func (h *Handler) ListQueries(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)
	role := authorization.ParseUserRole(c.GetString(authorization.ContextKeyUserRole))

	pagination := utils.ParsePagination(c)
	result, err := h.listQueries.Execute(c.Request.Context(), usecases.ListQueriesQuery{
		Status:      c.Query("status"),
		Search:      c.Query("search"),
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
		RequesterID: userID,
		IsAdmin:     role.IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Queries, result.Total, pagination.Page, pagination.PageSize, "queries retrieved")
}

func (h *Handler) RespondToQuery(c *gin.Context) {
	queryID, err := utils.ParseIDParam(c, "id", "query")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RespondToQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.respondToQuery.Execute(c.Request.Context(), usecases.RespondToQueryCommand{
		QueryID:      queryID,
		ResponseText: req.ResponseText,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "response recorded", result)
}

func (h *Handler) CloseQuery(c *gin.Context) {
	queryID, err := utils.ParseIDParam(c, "id", "query")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeQuery.Execute(c.Request.Context(), usecases.CloseQueryCommand{
		QueryID: queryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "query closed", result)
}
