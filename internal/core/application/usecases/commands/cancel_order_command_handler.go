package commands

import (
	"context"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/pkg/errs"
)

// CancelOrderCommandHandler marks an order as cancelled. The order record is
// kept; only its status changes.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the raw identifier token and cancels the matching order.
// A token that does not parse as a tracking id cannot match any stored order,
// so it is reported the same way as a lookup miss.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(cmd.OrderID())
	if err != nil {
		return nil, errs.NewObjectNotFoundError("trackingId", cmd.OrderID())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	existing.Cancel()

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
