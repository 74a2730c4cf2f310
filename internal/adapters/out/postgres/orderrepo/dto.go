// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The tracking identifier is indexed because every conversational lookup goes
// through it; uniqueness is by convention, not constraint.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID   string    `gorm:"index"`
	CustomerName string
	Address      string
	Item         string
	Qty          int
	Status       string `gorm:"index"`
	PickupTime   *time.Time
	AssignedTo   string
	Amount       float64
	Expenses     float64
	CreatedBy    string
	Channel      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		TrackingID:   o.TrackingID().String(),
		CustomerName: o.CustomerName(),
		Address:      o.Address(),
		Item:         o.Item(),
		Qty:          o.Qty(),
		Status:       o.Status().String(),
		PickupTime:   o.PickupTime(),
		AssignedTo:   o.AssignedTo(),
		Amount:       o.Amount(),
		Expenses:     o.Expenses(),
		CreatedBy:    o.Metadata().CreatedBy,
		Channel:      o.Metadata().Channel,
		CreatedAt:    o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// so creation defaults are not re-applied to stored values.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerName: dto.CustomerName,
		Address:      dto.Address,
		Item:         dto.Item,
		Qty:          dto.Qty,
		PickupTime:   dto.PickupTime,
		AssignedTo:   dto.AssignedTo,
		Amount:       dto.Amount,
		Expenses:     dto.Expenses,
		Metadata: order.Metadata{
			CreatedBy: dto.CreatedBy,
			Channel:   dto.Channel,
		},
	}

	return order.RestoreOrder(id, trackingID, details, order.Status(dto.Status), dto.CreatedAt)
}
