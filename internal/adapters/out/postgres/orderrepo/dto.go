// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by client, courier and status to serve the read-side queries, and
// versioned for compare-and-swap updates.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID  `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	BranchID        *uuid.UUID `gorm:"type:uuid"`
	BranchAddress   *string
	EmployeeID      *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	TotalPriceCents int64
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	StartCookingAt  *time.Time
	EndCookingAt    *time.Time
	DeliveryAt      *time.Time
	RefusalReason   *string
	Version         int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ClientID:        aggregate.ClientID().Bytes(),
		CourierID:       optionalUUID(aggregate.CourierID()),
		BranchID:        optionalUUID(aggregate.BranchID()),
		BranchAddress:   aggregate.BranchAddress(),
		EmployeeID:      optionalUUID(aggregate.EmployeeID()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		TotalPriceCents: aggregate.TotalPriceCents(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		StartCookingAt:  aggregate.StartCookingAt(),
		EndCookingAt:    aggregate.EndCookingAt(),
		DeliveryAt:      aggregate.DeliveryAt(),
		RefusalReason:   aggregate.RefusalReason(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := restoredUUID(dto.CourierID)
	if err != nil {
		return nil, err
	}
	branchID, err := restoredUUID(dto.BranchID)
	if err != nil {
		return nil, err
	}
	employeeID, err := restoredUUID(dto.EmployeeID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		courierID,
		branchID,
		dto.BranchAddress,
		employeeID,
		dto.DeliveryAddress,
		dto.TotalPriceCents,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.StartCookingAt,
		dto.EndCookingAt,
		dto.DeliveryAt,
		dto.RefusalReason,
		dto.Version,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoredUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
