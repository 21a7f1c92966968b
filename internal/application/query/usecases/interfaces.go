package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
)

type SubmitQueryExecutor interface {
	Execute(ctx context.Context, cmd SubmitQueryCommand) (*dto.QueryDTO, error)
}

type RespondToQueryExecutor interface {
	Execute(ctx context.Context, cmd RespondToQueryCommand) (*dto.QueryDTO, error)
}

type CloseQueryExecutor interface {
	Execute(ctx context.Context, cmd CloseQueryCommand) (*dto.QueryDTO, error)
}

type GetQueryExecutor interface {
	Execute(ctx context.Context, query GetQueryQuery) (*dto.QueryDTO, error)
}

type ListQueriesExecutor interface {
	Execute(ctx context.Context, query ListQueriesQuery) (*ListQueriesResult, error)
}
