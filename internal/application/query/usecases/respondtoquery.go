package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ecoride/helpdesk/internal/application/query/dto"
	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/domain/user"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/goroutine"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type RespondToQueryCommand struct {
	QueryID      uint
	ResponseText string
}

// AnsweredNotifier delivers the customer-facing notification after a query
// is answered. Delivery is best-effort and never blocks the response.
type AnsweredNotifier interface {
	SendQueryAnsweredEmail(to, displayName, queryNumber, responseText string) error
}

// RespondToQueryUseCase records an administrator's response. Responding to
// an answered query replaces the response and keeps it answered; a lost
// optimistic-concurrency race is rejected so the second admin sees the
// conflict instead of silently overwriting.
type RespondToQueryUseCase struct {
	queryRepo query.Repository
	directory user.Directory
	notifier  AnsweredNotifier
	logger    logger.Interface
}

func NewRespondToQueryUseCase(
	queryRepo query.Repository,
	directory user.Directory,
	notifier AnsweredNotifier,
	logger logger.Interface,
) *RespondToQueryUseCase {
	return &RespondToQueryUseCase{
		queryRepo: queryRepo,
		directory: directory,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *RespondToQueryUseCase) Execute(ctx context.Context, cmd RespondToQueryCommand) (*dto.QueryDTO, error) {
	uc.logger.Infow("executing respond to query use case", "query_id", cmd.QueryID)

	q, err := uc.queryRepo.GetByID(ctx, cmd.QueryID)
	if err != nil {
		if stderrors.Is(err, query.ErrNotFound) {
			return nil, errors.NewNotFoundError("query not found")
		}
		uc.logger.Errorw("failed to load query", "error", err, "query_id", cmd.QueryID)
		return nil, errors.NewInternalError("failed to load query")
	}

	if err := q.Respond(cmd.ResponseText); err != nil {
		if stderrors.Is(err, query.ErrQueryClosed) {
			return nil, errors.NewInvalidStateError("query is closed")
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.queryRepo.Update(ctx, q); err != nil {
		if stderrors.Is(err, query.ErrVersionConflict) {
			return nil, errors.NewConflictError("query was modified concurrently, reload and retry")
		}
		uc.logger.Errorw("failed to update query", "error", err, "query_id", cmd.QueryID)
		return nil, errors.NewInternalError("failed to respond to query")
	}

	uc.notifyCustomer(ctx, q)

	uc.logger.Infow("query answered", "query_id", q.ID(), "number", q.Number())

	return dto.ToQueryDTO(q), nil
}

func (uc *RespondToQueryUseCase) notifyCustomer(ctx context.Context, q *query.Query) {
	profile, err := uc.directory.GetProfile(ctx, q.CustomerID())
	if err != nil {
		uc.logger.Warnw("skipping answered notification, profile lookup failed",
			"error", err, "customer_id", q.CustomerID())
		return
	}
	if profile.Email == "" {
		return
	}

	number := q.Number()
	responseText := ""
	if q.ResponseText() != nil {
		responseText = *q.ResponseText()
	}
	to := profile.Email
	name := profile.DisplayName()

	goroutine.SafeGo(uc.logger, "query_answered_email", func() {
		if err := uc.notifier.SendQueryAnsweredEmail(to, name, number, responseText); err != nil {
			uc.logger.Warnw("failed to send answered notification",
				"error", err, "query_number", number)
		}
	})
}
