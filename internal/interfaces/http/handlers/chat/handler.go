package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/application/chat/dto"
	"github.com/ecoride/helpdesk/internal/application/chat/usecases"
	"github.com/ecoride/helpdesk/internal/shared/authorization"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/utils"
)

type Handler struct {
	startConversation usecases.StartConversationExecutor
	sendMessage       usecases.SendMessageExecutor
	listConversations usecases.ListConversationsExecutor
	listMessages      usecases.ListMessagesExecutor
	logger            logger.Interface
}

func NewHandler(
	startConversation usecases.StartConversationExecutor,
	sendMessage usecases.SendMessageExecutor,
	listConversations usecases.ListConversationsExecutor,
	listMessages usecases.ListMessagesExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		startConversation: startConversation,
		sendMessage:       sendMessage,
		listConversations: listConversations,
		listMessages:      listMessages,
		logger:            logger,
	}
}

func (h *Handler) StartConversation(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)

	result, err := h.startConversation.Execute(c.Request.Context(), usecases.StartConversationCommand{
		CustomerID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "conversation started")
}

func (h *Handler) SendMessage(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)

	conversationID, err := utils.ParseIDParam(c, "id", "conversation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.SendMessageCommand{
		ConversationID: conversationID,
		CustomerID:     userID,
		Text:           req.Text,
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

	message, err := h.sendMessage.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, message, "message sent")
}

func (h *Handler) ListConversations(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)

	conversations, err := h.listConversations.Execute(c.Request.Context(), usecases.ListConversationsQuery{
		CustomerID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "conversations retrieved", conversations)
}

func (h *Handler) ListMessages(c *gin.Context) {
	userID := c.GetUint(authorization.ContextKeyUserID)
	role := authorization.ParseUserRole(c.GetString(authorization.ContextKeyUserRole))

	conversationID, err := utils.ParseIDParam(c, "id", "conversation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messages, err := h.listMessages.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		ConversationID: conversationID,
		RequesterID:    userID,
		IsAdmin:        role.IsAdmin(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "messages retrieved", messages)
}
