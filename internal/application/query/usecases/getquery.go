package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/domain/user"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type GetQueryQuery struct {
	QueryID     uint
	RequesterID uint
	IsAdmin     bool
}

type GetQueryUseCase struct {
	queryRepo query.Repository
	directory user.Directory
	logger    logger.Interface
}

func NewGetQueryUseCase(
	queryRepo query.Repository,
	directory user.Directory,
	logger logger.Interface,
) *GetQueryUseCase {
	return &GetQueryUseCase{
		queryRepo: queryRepo,
		directory: directory,
		logger:    logger,
	}
}

func (uc *GetQueryUseCase) Execute(ctx context.Context, q GetQueryQuery) (*dto.QueryDTO, error) {
	loaded, err := uc.queryRepo.GetByID(ctx, q.QueryID)
	if err != nil {
		if stderrors.Is(err, query.ErrNotFound) {
			return nil, errors.NewNotFoundError("query not found")
		}
		uc.logger.Errorw("failed to load query", "error", err, "query_id", q.QueryID)
		return nil, errors.NewInternalError("failed to load query")
	}

	if !loaded.CanBeViewedBy(q.RequesterID, q.IsAdmin) {
		return nil, errors.NewForbiddenError("query belongs to another customer")
	}

	// Display name lookup is best-effort; the query renders without it.
	var profile *user.Profile
	if q.IsAdmin {
		profile, _ = uc.directory.GetProfile(ctx, loaded.CustomerID())
	}

	return dto.ToQueryDTOWithProfile(loaded, profile), nil
}
