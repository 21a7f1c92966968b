package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/knowledge/dto"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type ListEntriesQuery struct {
	Search string
}

// ListEntriesUseCase is the admin listing: it includes inactive entries.
type ListEntriesUseCase struct {
	knowledgeRepo knowledge.Repository
	logger        logger.Interface
}

func NewListEntriesUseCase(
	knowledgeRepo knowledge.Repository,
	logger logger.Interface,
) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		knowledgeRepo: knowledgeRepo,
		logger:        logger,
	}
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context, query ListEntriesQuery) ([]dto.KnowledgeEntryDTO, error) {
	entries, err := uc.knowledgeRepo.List(ctx, knowledge.ListFilter{Search: query.Search})
	if err != nil {
		uc.logger.Errorw("failed to list knowledge entries", "error", err)
		return nil, errors.NewInternalError("failed to list knowledge entries")
	}

	return dto.ToKnowledgeEntryDTOs(entries), nil
}
