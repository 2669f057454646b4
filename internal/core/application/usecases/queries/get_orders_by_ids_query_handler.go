package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrdersByIDsQueryHandler fetches a batch of orders in one round trip.
type GetOrdersByIDsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByIDsQueryHandler creates a handler for batch order lookups.
func NewGetOrdersByIDsQueryHandler(db *gorm.DB) GetOrdersByIDsQueryHandler {
	return GetOrdersByIDsQueryHandler{db: db}
}

// Handle executes the batch lookup. Missing ids are not an error.
func (h GetOrdersByIDsQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByIDsQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(query.OrderIDs()))
	for _, id := range query.OrderIDs() {
		ids = append(ids, id.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ANY(?)
		ORDER BY created_at, id
	`, pq.Array(ids)).Rows()
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
