package commands

import (
	"errors"
	"strings"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var (
	ErrCancelOrdersCommandIsNotConstructed = errors.New(
		"CancelOrdersCommand must be created via NewCancelOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// CancelOrdersCommand represents a request to cancel a batch of orders with
// a shared refusal reason. A blank reason rejects the whole batch before any
// order is touched.
type CancelOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelOrdersCommand creates a batch cancellation command.
func NewCancelOrdersCommand(orderIDs []kernel.UUID, reason string) (CancelOrdersCommand, error) {
	cancelCommand := CancelOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderIDs(orderIDs),
		cancelCommand.setReason(reason),
	); err != nil {
		return CancelOrdersCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to cancel.
func (c CancelOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Reason returns the refusal reason shared by the batch.
func (c CancelOrdersCommand) Reason() string {
	return c.reason
}

func (c *CancelOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *CancelOrdersCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrRefusalReasonIsRequired
	}

	c.reason = reason
	return nil
}
