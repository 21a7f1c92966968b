package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/knowledge/dto"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type AddEntryCommand struct {
	Question string
	Answer   string
	Category string
}

type AddEntryUseCase struct {
	knowledgeRepo knowledge.Repository
	logger        logger.Interface
}

func NewAddEntryUseCase(
	knowledgeRepo knowledge.Repository,
	logger logger.Interface,
) *AddEntryUseCase {
	return &AddEntryUseCase{
		knowledgeRepo: knowledgeRepo,
		logger:        logger,
	}
}

func (uc *AddEntryUseCase) Execute(ctx context.Context, cmd AddEntryCommand) (*dto.KnowledgeEntryDTO, error) {
	uc.logger.Infow("executing add knowledge entry use case", "category", cmd.Category)

	entry, err := knowledge.NewEntry(cmd.Question, cmd.Answer, cmd.Category)
	if err != nil {
		uc.logger.Errorw("failed to create knowledge entry", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.knowledgeRepo.Save(ctx, entry); err != nil {
		uc.logger.Errorw("failed to save knowledge entry", "error", err)
		return nil, errors.NewInternalError("failed to save knowledge entry")
	}

	uc.logger.Infow("knowledge entry created", "entry_id", entry.ID())

	return dto.ToKnowledgeEntryDTO(entry), nil
}
