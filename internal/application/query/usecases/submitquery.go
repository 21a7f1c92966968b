package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type SubmitQueryCommand struct {
	CustomerID uint
	QueryText  string
	Attachment *dto.AttachmentDTO
}

type SubmitQueryUseCase struct {
	queryRepo       query.Repository
	numberGenerator query.NumberGenerator
	logger          logger.Interface
}

func NewSubmitQueryUseCase(
	queryRepo query.Repository,
	numberGenerator query.NumberGenerator,
	logger logger.Interface,
) *SubmitQueryUseCase {
	return &SubmitQueryUseCase{
		queryRepo:       queryRepo,
		numberGenerator: numberGenerator,
		logger:          logger,
	}
}

func (uc *SubmitQueryUseCase) Execute(ctx context.Context, cmd SubmitQueryCommand) (*dto.QueryDTO, error) {
	uc.logger.Infow("executing submit query use case", "customer_id", cmd.CustomerID)

	var attachment *query.Attachment
	if cmd.Attachment != nil {
		attachment = &query.Attachment{
			FileName: cmd.Attachment.FileName,
			FileURL:  cmd.Attachment.FileURL,
		}
	}

	q, err := query.NewQuery(cmd.CustomerID, cmd.QueryText, attachment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGenerator.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate query number", "error", err)
		return nil, errors.NewInternalError("failed to submit query")
	}

	if err := q.SetNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to submit query")
	}

	if err := uc.queryRepo.Save(ctx, q); err != nil {
		uc.logger.Errorw("failed to save query", "error", err)
		return nil, errors.NewInternalError("failed to submit query")
	}

	uc.logger.Infow("query submitted", "query_id", q.ID(), "number", q.Number())

	return dto.ToQueryDTO(q), nil
}
