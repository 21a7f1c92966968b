package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type RemoveEntryCommand struct {
	EntryID uint
}

type RemoveEntryUseCase struct {
	knowledgeRepo knowledge.Repository
	logger        logger.Interface
}

func NewRemoveEntryUseCase(
	knowledgeRepo knowledge.Repository,
	logger logger.Interface,
) *RemoveEntryUseCase {
	return &RemoveEntryUseCase{
		knowledgeRepo: knowledgeRepo,
		logger:        logger,
	}
}

func (uc *RemoveEntryUseCase) Execute(ctx context.Context, cmd RemoveEntryCommand) error {
	uc.logger.Infow("executing remove knowledge entry use case", "entry_id", cmd.EntryID)

	if err := uc.knowledgeRepo.Delete(ctx, cmd.EntryID); err != nil {
		if stderrors.Is(err, knowledge.ErrNotFound) {
			return errors.NewNotFoundError("knowledge entry not found")
		}
		uc.logger.Errorw("failed to delete knowledge entry", "error", err, "entry_id", cmd.EntryID)
		return errors.NewInternalError("failed to delete knowledge entry")
	}

	uc.logger.Infow("knowledge entry removed", "entry_id", cmd.EntryID)
	return nil
}
