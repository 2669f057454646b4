package queries

import (
	"context"

	"foodorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler lists the orders assigned to a courier.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the courier orders query.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = ?
	`
	args := []any{query.CourierID().Bytes()}

	if query.ActiveOnly() {
		sql += ` AND status != ?`
		args = append(args, order.Completed)
	}

	sql += `
		ORDER BY created_at, id
	`
	if query.PageSize() > 0 {
		sql += ` LIMIT ? OFFSET ?`
		args = append(args, query.PageSize(), query.Offset())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
