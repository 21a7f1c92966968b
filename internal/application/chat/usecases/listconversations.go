package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/chat/dto"
	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type ListConversationsQuery struct {
	CustomerID uint
}

type ListConversationsUseCase struct {
	conversationRepo chat.ConversationRepository
	logger           logger.Interface
}

func NewListConversationsUseCase(
	conversationRepo chat.ConversationRepository,
	logger logger.Interface,
) *ListConversationsUseCase {
	return &ListConversationsUseCase{
		conversationRepo: conversationRepo,
		logger:           logger,
	}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, query ListConversationsQuery) ([]dto.ConversationDTO, error) {
	conversations, err := uc.conversationRepo.ListByCustomer(ctx, query.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to list conversations", "error", err, "customer_id", query.CustomerID)
		return nil, errors.NewInternalError("failed to list conversations")
	}

	return dto.ToConversationDTOs(conversations), nil
}
