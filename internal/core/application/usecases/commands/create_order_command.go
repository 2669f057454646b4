package commands

import (
	"errors"
	"strings"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderLinesAreRequired     = errors.New("order must contain at least one dish line")
)

// OrderLineInput carries one dish position of a new order as received from
// the caller. The handler turns it into a DishLine entity, which performs
// the per-line validation.
type OrderLineInput struct {
	DishID         kernel.UUID
	DishName       string
	Quantity       int
	UnitPriceCents int64
}

// CreateOrderCommand represents a request to register a new food order with
// its dish lines. The total price is derived from the lines, not supplied.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	clientID        kernel.UUID
	deliveryAddress string
	lines           []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both IDs are valid, the delivery address is not blank,
// and at least one dish line is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	deliveryAddress string,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// DeliveryAddress returns the postal address the order ships to.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Lines returns the dish positions of the order.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if strings.TrimSpace(deliveryAddress) == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = lines
	return nil
}
