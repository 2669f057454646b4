package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersQueryHandler counts orders by participant. One handler serves
// the client, courier and employee analytics endpoints; only the filtered
// column differs.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order count queries.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the count query.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	column, err := query.ActorKind().column()
	if err != nil {
		return 0, err
	}

	var count int64
	err = h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders WHERE `+column+` = ?`,
		query.ActorID().Bytes(),
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
