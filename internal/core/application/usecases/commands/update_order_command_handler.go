package commands

import (
	"context"

	"orderchat/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a detected change set to an existing order.
// All detected changes are applied together and persisted as one update.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies every change present in the set, and persists
// the result. Removals run before additions so that "remove bread add bread
// rolls" behaves as users expect. A removal that would empty the item list
// fails the whole update; nothing is persisted.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.GetByTrackingID(ctx, cmd.TrackingID())
	if err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if changes.Status != "" {
		if err = existing.SetStatus(changes.Status); err != nil {
			return nil, err
		}
	}
	if changes.PickupTime != nil {
		existing.SchedulePickup(*changes.PickupTime)
	}
	if changes.Assignee != "" {
		if err = existing.AssignTo(changes.Assignee); err != nil {
			return nil, err
		}
	}
	if len(changes.RemovedItems) > 0 {
		if err = existing.RemoveItems(changes.RemovedItems); err != nil {
			return nil, err
		}
	}
	if len(changes.AddedItems) > 0 {
		existing.AddItems(changes.AddedItems)
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
