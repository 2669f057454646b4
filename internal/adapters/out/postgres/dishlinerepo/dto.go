// Package dishlinerepo persists order line items. Lines are written once
// together with their order and only ever read back afterwards.
package dishlinerepo

import (
	"foodorders/internal/core/domain/model/dishline"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DishLineDTO represents the database structure for order line items.
type DishLineDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	DishID         uuid.UUID `gorm:"type:uuid"`
	DishName       string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for line items.
func (DishLineDTO) TableName() string {
	return "dish_lines"
}

func fromDomain(line *dishline.DishLine) DishLineDTO {
	return DishLineDTO{
		ID:             line.ID().Bytes(),
		OrderID:        line.OrderID().Bytes(),
		DishID:         line.DishID().Bytes(),
		DishName:       line.DishName(),
		Quantity:       line.Quantity(),
		UnitPriceCents: line.UnitPriceCents(),
	}
}

func toDomain(dto DishLineDTO) (*dishline.DishLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return nil, err
	}

	return dishline.NewDishLine(id, orderID, dishID, dto.DishName, dto.Quantity, dto.UnitPriceCents)
}
