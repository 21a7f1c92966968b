package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/application/chat/dto"
	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type ListMessagesQuery struct {
	ConversationID uint
	RequesterID    uint
	IsAdmin        bool
}

type ListMessagesUseCase struct {
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	logger           logger.Interface
}

func NewListMessagesUseCase(
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		logger:           logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]dto.MessageDTO, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, query.ConversationID)
	if err != nil {
		if stderrors.Is(err, chat.ErrNotFound) {
			return nil, errors.NewNotFoundError("conversation not found")
		}
		uc.logger.Errorw("failed to load conversation", "error", err, "conversation_id", query.ConversationID)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	if !query.IsAdmin && conversation.CustomerID() != query.RequesterID {
		return nil, errors.NewForbiddenError("conversation belongs to another customer")
	}

	messages, err := uc.messageRepo.ListByConversation(ctx, query.ConversationID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "conversation_id", query.ConversationID)
		return nil, errors.NewInternalError("failed to list messages")
	}

	return dto.ToMessageDTOs(messages), nil
}
