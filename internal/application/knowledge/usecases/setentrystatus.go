package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/application/knowledge/dto"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type SetEntryStatusCommand struct {
	EntryID uint
	Active  bool
}

// SetEntryStatusUseCase activates or deactivates an entry. Deactivated
// entries disappear from the help center and the matcher but keep their
// content for later reactivation.
type SetEntryStatusUseCase struct {
	knowledgeRepo knowledge.Repository
	logger        logger.Interface
}

func NewSetEntryStatusUseCase(
	knowledgeRepo knowledge.Repository,
	logger logger.Interface,
) *SetEntryStatusUseCase {
	return &SetEntryStatusUseCase{
		knowledgeRepo: knowledgeRepo,
		logger:        logger,
	}
}

func (uc *SetEntryStatusUseCase) Execute(ctx context.Context, cmd SetEntryStatusCommand) (*dto.KnowledgeEntryDTO, error) {
	uc.logger.Infow("executing set entry status use case", "entry_id", cmd.EntryID, "active", cmd.Active)

	entry, err := uc.knowledgeRepo.GetByID(ctx, cmd.EntryID)
	if err != nil {
		if stderrors.Is(err, knowledge.ErrNotFound) {
			return nil, errors.NewNotFoundError("knowledge entry not found")
		}
		uc.logger.Errorw("failed to load knowledge entry", "error", err, "entry_id", cmd.EntryID)
		return nil, errors.NewInternalError("failed to load knowledge entry")
	}

	entry.SetActive(cmd.Active)

	if err := uc.knowledgeRepo.Update(ctx, entry); err != nil {
		uc.logger.Errorw("failed to update knowledge entry", "error", err, "entry_id", cmd.EntryID)
		return nil, errors.NewInternalError("failed to update knowledge entry")
	}

	return dto.ToKnowledgeEntryDTO(entry), nil
}
