package commands

import (
	"context"
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// CancelOrdersResult reports the per-order outcome of a batch cancellation.
// Every requested id lands in exactly one of the three buckets.
type CancelOrdersResult struct {
	// Cancelled holds the ids that were moved to the Cancelled status.
	Cancelled []kernel.UUID
	// NotFound holds the ids no order exists for.
	NotFound []kernel.UUID
	// Rejected holds the ids whose orders refused the cancellation,
	// typically because they are already completed or cancelled, or
	// because a concurrent writer bumped the version.
	Rejected []kernel.UUID
}

// CancelOrdersCommandHandler cancels a batch of orders in one transaction.
// Individual failures do not abort the batch: the orders that could be
// cancelled are committed and the rest are reported in the result.
type CancelOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrdersCommandHandler creates a handler for batch cancellation.
func NewCancelOrdersCommandHandler(uowFactory OrderUoWFactory) CancelOrdersCommandHandler {
	return CancelOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch cancellation command.
// Missing orders and orders that refuse the transition are collected into
// the result; only infrastructure failures abort the whole batch.
func (h CancelOrdersCommandHandler) Handle(
	ctx context.Context, cmd CancelOrdersCommand,
) (CancelOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	var result CancelOrdersResult
	for _, id := range cmd.OrderIDs() {
		aggregate, err := orderRepo.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		if err != nil {
			return CancelOrdersResult{}, err
		}

		if err = aggregate.Cancel(cmd.Reason()); err != nil {
			result.Rejected = append(result.Rejected, id)
			continue
		}

		err = orderRepo.Update(ctx, aggregate)
		if errors.Is(err, errs.ErrVersionConflict) {
			result.Rejected = append(result.Rejected, id)
			continue
		}
		if err != nil {
			return CancelOrdersResult{}, err
		}

		result.Cancelled = append(result.Cancelled, id)
	}

	if err := uow.Commit(ctx); err != nil {
		return CancelOrdersResult{}, err
	}

	return result, nil
}
