package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/application/knowledge/dto"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type UpdateEntryCommand struct {
	EntryID  uint
	Question string
	Answer   string
	Category string
}

type UpdateEntryUseCase struct {
	knowledgeRepo knowledge.Repository
	logger        logger.Interface
}

func NewUpdateEntryUseCase(
	knowledgeRepo knowledge.Repository,
	logger logger.Interface,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		knowledgeRepo: knowledgeRepo,
		logger:        logger,
	}
}

func (uc *UpdateEntryUseCase) Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.KnowledgeEntryDTO, error) {
	uc.logger.Infow("executing update knowledge entry use case", "entry_id", cmd.EntryID)

	entry, err := uc.knowledgeRepo.GetByID(ctx, cmd.EntryID)
	if err != nil {
		if stderrors.Is(err, knowledge.ErrNotFound) {
			return nil, errors.NewNotFoundError("knowledge entry not found")
		}
		uc.logger.Errorw("failed to load knowledge entry", "error", err, "entry_id", cmd.EntryID)
		return nil, errors.NewInternalError("failed to load knowledge entry")
	}

	if err := entry.UpdateContent(cmd.Question, cmd.Answer, cmd.Category); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.knowledgeRepo.Update(ctx, entry); err != nil {
		uc.logger.Errorw("failed to update knowledge entry", "error", err, "entry_id", cmd.EntryID)
		return nil, errors.NewInternalError("failed to update knowledge entry")
	}

	return dto.ToKnowledgeEntryDTO(entry), nil
}
