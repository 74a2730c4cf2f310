package commands

import (
	"context"

	"orderchat/internal/core/domain/model/order"
)

// UpdateAddressCommandHandler patches the delivery address of an existing order.
// Returns the updated aggregate so the caller can echo the new address back.
type UpdateAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateAddressCommandHandler creates a handler for address updates.
func NewUpdateAddressCommandHandler(uowFactory OrderUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order by tracking id, replaces its address, and persists the
// change. A missing order surfaces as errs.ObjectNotFoundError from the repository.
func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) (*order.Order, error) {
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

	if err = existing.SetAddress(cmd.Address()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
