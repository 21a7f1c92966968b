package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
	"github.com/ecoride/helpdesk/internal/domain/query"
	vo "github.com/ecoride/helpdesk/internal/domain/query/valueobjects"
	"github.com/ecoride/helpdesk/internal/domain/user"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type ListQueriesQuery struct {
	Status      string
	Search      string
	Page        int
	PageSize    int
	RequesterID uint
	IsAdmin     bool
}

type ListQueriesResult struct {
	Queries []dto.QueryDTO
	Total   int64
}

// ListQueriesUseCase serves both views: customers see their own queries,
// admins see everything with display names resolved.
type ListQueriesUseCase struct {
	queryRepo query.Repository
	directory user.Directory
	logger    logger.Interface
}

func NewListQueriesUseCase(
	queryRepo query.Repository,
	directory user.Directory,
	logger logger.Interface,
) *ListQueriesUseCase {
	return &ListQueriesUseCase{
		queryRepo: queryRepo,
		directory: directory,
		logger:    logger,
	}
}

func (uc *ListQueriesUseCase) Execute(ctx context.Context, q ListQueriesQuery) (*ListQueriesResult, error) {
	filter := query.Filter{
		Search:   q.Search,
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	if !q.IsAdmin {
		filter.CustomerID = q.RequesterID
	}

	if q.Status != "" {
		status, err := vo.NewQueryStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	queries, total, err := uc.queryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list queries", "error", err)
		return nil, errors.NewInternalError("failed to list queries")
	}

	dtos := make([]dto.QueryDTO, 0, len(queries))
	profiles := make(map[uint]*user.Profile)
	for _, loaded := range queries {
		var profile *user.Profile
		if q.IsAdmin {
			var ok bool
			profile, ok = profiles[loaded.CustomerID()]
			if !ok {
				profile, _ = uc.directory.GetProfile(ctx, loaded.CustomerID())
				profiles[loaded.CustomerID()] = profile
			}
		}
		dtos = append(dtos, *dto.ToQueryDTOWithProfile(loaded, profile))
	}

	return &ListQueriesResult{Queries: dtos, Total: total}, nil
}
