package ports

import (
	"context"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are addressed by their human-facing tracking identifier; the internal
// storage id never leaves the adapter layer.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByTrackingID retrieves an order aggregate by its tracking identifier.
	// Returns an errs.ObjectNotFoundError if no such order exists.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)

	// Delete permanently removes the order with the given tracking identifier.
	// Returns an errs.ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, trackingID kernel.TrackingID) error
}
