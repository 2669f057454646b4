// Package dishline contains the DishLine entity: one dish position of an
// order. Lines are immutable after creation and always belong to exactly
// one order.
package dishline

import (
	"fmt"
	"strings"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// DishLine is one line item of an order: a dish, how many of it, and the
// unit price at the time the order was placed.
type DishLine struct {
	id             kernel.UUID
	orderID        kernel.UUID
	dishID         kernel.UUID
	dishName       string
	quantity       int
	unitPriceCents int64

	isConstructed bool
}

// NewDishLine validates and builds a line item for the given order.
func NewDishLine(
	id kernel.UUID,
	orderID kernel.UUID,
	dishID kernel.UUID,
	dishName string,
	quantity int,
	unitPriceCents int64,
) (*DishLine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := dishID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("dishId", err)
	}
	if strings.TrimSpace(dishName) == "" {
		return nil, errs.NewValueIsRequiredError("dishName")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPriceCents < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPriceCents", fmt.Errorf("%d is negative", unitPriceCents))
	}

	return &DishLine{
		id:             id,
		orderID:        orderID,
		dishID:         dishID,
		dishName:       dishName,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		isConstructed:  true,
	}, nil
}

// Validate ensures the line was built through NewDishLine.
func (l *DishLine) Validate() error {
	if l == nil || !l.isConstructed {
		return errs.NewValueIsRequiredError("DishLine must be created via NewDishLine")
	}
	return nil
}

func (l *DishLine) ID() kernel.UUID        { return l.id }
func (l *DishLine) OrderID() kernel.UUID   { return l.orderID }
func (l *DishLine) DishID() kernel.UUID    { return l.dishID }
func (l *DishLine) DishName() string       { return l.dishName }
func (l *DishLine) Quantity() int          { return l.quantity }
func (l *DishLine) UnitPriceCents() int64  { return l.unitPriceCents }

// TotalCents is the line subtotal: quantity times unit price.
func (l *DishLine) TotalCents() int64 {
	return int64(l.quantity) * l.unitPriceCents
}
