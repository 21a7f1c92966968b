package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/knowledge/dto"
)

type AddEntryExecutor interface {
	Execute(ctx context.Context, cmd AddEntryCommand) (*dto.KnowledgeEntryDTO, error)
}

type UpdateEntryExecutor interface {
	Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.KnowledgeEntryDTO, error)
}

type SetEntryStatusExecutor interface {
	Execute(ctx context.Context, cmd SetEntryStatusCommand) (*dto.KnowledgeEntryDTO, error)
}

type RemoveEntryExecutor interface {
	Execute(ctx context.Context, cmd RemoveEntryCommand) error
}

type ListEntriesExecutor interface {
	Execute(ctx context.Context, query ListEntriesQuery) ([]dto.KnowledgeEntryDTO, error)
}

type GetHelpCenterExecutor interface {
	Execute(ctx context.Context) ([]dto.HelpCenterCategoryDTO, error)
}
