package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler moves an order through its lifecycle.
// The aggregate enforces the transition table; the handler only picks the
// operation matching the requested target and stamps the wall clock.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the order, applies the matching aggregate operation and persists
// the result with compare-and-swap. An illegal transition surfaces as
// errs.ErrValueIsInvalid; a stale aggregate as errs.ErrVersionConflict.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch cmd.Target() {
	case order.Review:
		err = aggregate.Pay()
	case order.Cooking:
		err = aggregate.StartCooking(now, cmd.Kitchen())
	case order.Cooked:
		err = aggregate.MarkCooked(now)
	case order.Delivery:
		err = aggregate.StartDelivery(now)
	case order.Completed:
		err = aggregate.Complete()
	default:
		err = ErrTargetStatusIsNotUpdatable
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
