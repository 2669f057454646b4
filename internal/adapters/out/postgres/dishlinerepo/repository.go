package dishlinerepo

import (
	"context"

	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormDishLineRepository implements DishLineRepository using GORM.
type GormDishLineRepository struct {
	db *gorm.DB
}

// NewGormDishLineRepository creates a new GORM dish line repository.
func NewGormDishLineRepository(db *gorm.DB) *GormDishLineRepository {
	return &GormDishLineRepository{db: db}
}

// AddAll saves the line items of a new order in one insert.
func (r *GormDishLineRepository) AddAll(ctx context.Context, lines []*dishline.DishLine) error {
	if len(lines) == 0 {
		return nil
	}

	dtos := make([]DishLineDTO, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(line))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetAllByOrderID retrieves every line item of a single order.
func (r *GormDishLineRepository) GetAllByOrderID(
	ctx context.Context, orderID kernel.UUID,
) ([]*dishline.DishLine, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DishLineDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByOrderIDs retrieves the line items of several orders in one round trip.
func (r *GormDishLineRepository) GetAllByOrderIDs(
	ctx context.Context, orderIDs []kernel.UUID,
) ([]*dishline.DishLine, error) {
	if len(orderIDs) == 0 {
		return []*dishline.DishLine{}, nil
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.String())
	}

	var dtos []DishLineDTO
	if err := r.db.WithContext(ctx).
		Order("order_id, id").
		Find(&dtos, "order_id = ANY(?)", pq.Array(ids)).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []DishLineDTO) ([]*dishline.DishLine, error) {
	lines := make([]*dishline.DishLine, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
