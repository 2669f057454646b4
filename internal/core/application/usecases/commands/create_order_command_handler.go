package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order aggregate together with its dish lines in one transaction,
// deriving the total price from the lines.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the order and its lines are persisted atomically.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the dish lines first so every line is validated before the order
// aggregate is constructed with the summed total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]*dishline.DishLine, 0, len(cmd.Lines()))
	var totalCents int64
	for _, in := range cmd.Lines() {
		line, err := dishline.NewDishLine(
			kernel.NewUUID(), cmd.OrderID(), in.DishID, in.DishName, in.Quantity, in.UnitPriceCents,
		)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		totalCents += line.TotalCents()
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ClientID(), cmd.DeliveryAddress(), totalCents, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.DishLineRepository().AddAll(ctx, lines); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
