package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrTargetStatusIsNotUpdatable = errors.New(
		"target status is not reachable via status update, use the dedicated operation",
	)
	ErrKitchenContextIsRequired = errors.New(
		"branch id, branch address and employee id are required to start cooking",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to the next
// lifecycle stage. Cancellation and creation have their own commands, so
// those targets are rejected here. Starting cooking additionally carries the
// kitchen context that gets snapshotted onto the order.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	kitchen order.KitchenContext

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to target.
// The kitchen context is required when target is Cooking and ignored otherwise.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	kitchen order.KitchenContext,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	if target == order.Cooking {
		if err := kitchen.Validate(); err != nil {
			return UpdateOrderStatusCommand{}, errors.Join(ErrKitchenContextIsRequired, err)
		}
		statusCommand.kitchen = kitchen
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Kitchen returns the kitchen context for a Cooking transition.
func (c UpdateOrderStatusCommand) Kitchen() order.KitchenContext {
	return c.kitchen
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.Created || target == order.Cancelled {
		return ErrTargetStatusIsNotUpdatable
	}

	c.target = target
	return nil
}
