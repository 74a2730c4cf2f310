package commands

import (
	"errors"
	"time"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNoChangesRequested = errors.New("no changes requested")
)

// OrderChanges is the set of independent field changes one update utterance may
// carry. Any subset may be populated; IsEmpty reports whether nothing was
// detected, in which case no command should be issued.
type OrderChanges struct {
	Status       order.Status
	PickupTime   *time.Time
	Assignee     string
	AddedItems   []string
	RemovedItems []string
}

// IsEmpty reports whether the change set carries nothing to apply.
func (c OrderChanges) IsEmpty() bool {
	return c.Status == "" &&
		c.PickupTime == nil &&
		c.Assignee == "" &&
		len(c.AddedItems) == 0 &&
		len(c.RemovedItems) == 0
}

// UpdateOrderCommand represents a request to apply a detected change set to an
// existing order as one write.
type UpdateOrderCommand struct {
	trackingID kernel.TrackingID
	changes    OrderChanges

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// Validates that the tracking id is constructed and at least one change is present.
func NewUpdateOrderCommand(trackingID kernel.TrackingID, changes OrderChanges) (UpdateOrderCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if changes.IsEmpty() {
		return UpdateOrderCommand{}, ErrNoChangesRequested
	}

	return UpdateOrderCommand{
		trackingID: trackingID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// TrackingID returns the identifier of the order to update.
func (c UpdateOrderCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Changes returns the detected change set.
func (c UpdateOrderCommand) Changes() OrderChanges {
	return c.changes
}
