package queries

import (
	"context"

	"foodorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler lists orders ready for courier assignment:
// being cooked or already cooked, with no courier attached.
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned order queries.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the unassigned orders query.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?)
		  AND courier_id IS NULL
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, order.Cooking, order.Cooked, query.PageSize(), query.Offset()).Rows()
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
