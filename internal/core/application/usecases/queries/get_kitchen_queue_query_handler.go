package queries

import (
	"context"

	"foodorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetKitchenQueueQueryHandler lists orders in Review, Cooking or Cooked
// status, oldest first, so the kitchen processes them in arrival order.
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the kitchen queue query.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at, id
	`, order.Review, order.Cooking, order.Cooked).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachLines(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
