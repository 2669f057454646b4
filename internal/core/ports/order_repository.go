// Package ports defines the outbound contracts of the application core:
// repositories, the unit of work, and the geocoding client. Adapters under
// internal/adapters implement them, which keeps the core testable with mocks.
package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using
	// compare-and-swap on the aggregate version. Returns
	// errs.ErrVersionConflict when the stored version no longer matches
	// the version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
