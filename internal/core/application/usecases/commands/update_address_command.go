package commands

import (
	"errors"
	"strings"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/pkg/guard"
)

var (
	ErrUpdateAddressCommandIsNotConstructed = errors.New(
		"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// UpdateAddressCommand represents a request to replace the delivery address of
// an existing order, addressed by its tracking identifier.
type UpdateAddressCommand struct {
	trackingID kernel.TrackingID
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateAddressCommand creates a command to patch an order's address.
// Validates that the tracking id is constructed and the address is non-blank.
func NewUpdateAddressCommand(trackingID kernel.TrackingID, address string) (UpdateAddressCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return UpdateAddressCommand{}, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return UpdateAddressCommand{}, ErrAddressIsRequired
	}

	return UpdateAddressCommand{
		trackingID: trackingID,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

// TrackingID returns the identifier of the order to patch.
func (c UpdateAddressCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Address returns the new delivery address.
func (c UpdateAddressCommand) Address() string {
	return c.address
}
