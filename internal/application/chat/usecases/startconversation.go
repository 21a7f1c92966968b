package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/chat/dto"
	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type StartConversationCommand struct {
	CustomerID uint
}

type StartConversationResult struct {
	Conversation dto.ConversationDTO
	Welcome      dto.MessageDTO
}

// StartConversationUseCase opens a conversation with the placeholder title
// and posts the assistant's greeting immediately, so the customer never sees
// an empty thread.
type StartConversationUseCase struct {
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	defaultTitle     string
	welcomeMessage   string
	logger           logger.Interface
}

func NewStartConversationUseCase(
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	defaultTitle string,
	welcomeMessage string,
	logger logger.Interface,
) *StartConversationUseCase {
	return &StartConversationUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		defaultTitle:     defaultTitle,
		welcomeMessage:   welcomeMessage,
		logger:           logger,
	}
}

func (uc *StartConversationUseCase) Execute(ctx context.Context, cmd StartConversationCommand) (*StartConversationResult, error) {
	uc.logger.Infow("executing start conversation use case", "customer_id", cmd.CustomerID)

	conversation, err := chat.NewConversation(cmd.CustomerID, uc.defaultTitle)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.conversationRepo.Save(ctx, conversation); err != nil {
		uc.logger.Errorw("failed to save conversation", "error", err)
		return nil, errors.NewInternalError("failed to start conversation")
	}

	welcome, err := chat.NewMessage(conversation.ID(), chat.SenderSystem, uc.welcomeMessage, nil)
	if err != nil {
		return nil, errors.NewInternalError("failed to build welcome message")
	}

	if err := uc.messageRepo.Save(ctx, welcome); err != nil {
		uc.logger.Errorw("failed to save welcome message", "error", err, "conversation_id", conversation.ID())
		return nil, errors.NewInternalError("failed to start conversation")
	}

	uc.logger.Infow("conversation started", "conversation_id", conversation.ID())

	return &StartConversationResult{
		Conversation: *dto.ToConversationDTO(conversation),
		Welcome:      *dto.ToMessageDTO(welcome),
	}, nil
}
