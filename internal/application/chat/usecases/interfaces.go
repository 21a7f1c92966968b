package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/chat/dto"
)

type StartConversationExecutor interface {
	Execute(ctx context.Context, cmd StartConversationCommand) (*StartConversationResult, error)
}

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error)
}

type ListConversationsExecutor interface {
	Execute(ctx context.Context, query ListConversationsQuery) ([]dto.ConversationDTO, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query ListMessagesQuery) ([]dto.MessageDTO, error)
}
