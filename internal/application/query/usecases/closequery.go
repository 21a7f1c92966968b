package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type CloseQueryCommand struct {
	QueryID uint
}

type CloseQueryUseCase struct {
	queryRepo query.Repository
	logger    logger.Interface
}

func NewCloseQueryUseCase(
	queryRepo query.Repository,
	logger logger.Interface,
) *CloseQueryUseCase {
	return &CloseQueryUseCase{
		queryRepo: queryRepo,
		logger:    logger,
	}
}

func (uc *CloseQueryUseCase) Execute(ctx context.Context, cmd CloseQueryCommand) (*dto.QueryDTO, error) {
	uc.logger.Infow("executing close query use case", "query_id", cmd.QueryID)

	q, err := uc.queryRepo.GetByID(ctx, cmd.QueryID)
	if err != nil {
		if stderrors.Is(err, query.ErrNotFound) {
			return nil, errors.NewNotFoundError("query not found")
		}
		uc.logger.Errorw("failed to load query", "error", err, "query_id", cmd.QueryID)
		return nil, errors.NewInternalError("failed to load query")
	}

	if err := q.Close(); err != nil {
		if stderrors.Is(err, query.ErrQueryClosed) {
			return nil, errors.NewInvalidStateError("query is already closed")
		}
		return nil, errors.NewInternalError("failed to close query")
	}

	if err := uc.queryRepo.Update(ctx, q); err != nil {
		if stderrors.Is(err, query.ErrVersionConflict) {
			return nil, errors.NewConflictError("query was modified concurrently, reload and retry")
		}
		uc.logger.Errorw("failed to update query", "error", err, "query_id", cmd.QueryID)
		return nil, errors.NewInternalError("failed to close query")
	}

	uc.logger.Infow("query closed", "query_id", q.ID(), "number", q.Number())

	return dto.ToQueryDTO(q), nil
}
