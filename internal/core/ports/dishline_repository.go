package ports

import (
	"context"

	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"
)

// DishLineRepository defines the persistence contract for order line items.
// Lines are written once together with their order and never updated.
type DishLineRepository interface {
	// AddAll persists the line items of a new order.
	AddAll(ctx context.Context, lines []*dishline.DishLine) error

	// GetAllByOrderID retrieves every line item of a single order.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*dishline.DishLine, error)

	// GetAllByOrderIDs retrieves the line items of several orders in one
	// round trip. The result preserves no particular order across orders.
	GetAllByOrderIDs(ctx context.Context, orderIDs []kernel.UUID) ([]*dishline.DishLine, error)
}
