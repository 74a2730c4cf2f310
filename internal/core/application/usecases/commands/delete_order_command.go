package commands

import (
	"errors"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to permanently remove an order.
type DeleteOrderCommand struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(trackingID kernel.TrackingID) (DeleteOrderCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// TrackingID returns the identifier of the order to delete.
func (c DeleteOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}
