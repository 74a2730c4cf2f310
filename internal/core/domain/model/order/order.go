package order

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrLastItemCannotBeRemoved is returned by RemoveItems when the removal
	// would leave the item list empty. An order always keeps at least one item.
	ErrLastItemCannotBeRemoved = errors.New("an order must keep at least one item")
)

// Default monetary values applied when extraction yields nothing usable.
const (
	DefaultQty      = 1
	DefaultAmount   = 200
	DefaultExpenses = 50
)

// Metadata records creation provenance for an order: who created it and through
// which channel (e.g. the conversational interface).
type Metadata struct {
	CreatedBy string
	Channel   string
}

// Details carries the optional and required fields for constructing an order.
// Item is the only required field; Qty below 1 falls back to DefaultQty, and
// zero Amount/Expenses fall back to their defaults.
type Details struct {
	CustomerName string
	Address      string
	Item         string
	Qty          int
	PickupTime   *time.Time
	AssignedTo   string
	Amount       float64
	Expenses     float64
	Metadata     Metadata
}

// Order represents a delivery order managed through the conversational interface.
// It is the aggregate root for the order lifecycle.
//
// Order maintains these invariants:
//   - Must have a valid internal identifier and tracking identifier
//   - The tracking identifier is assigned exactly once and never mutated
//   - Item is required (possibly a comma-joined composite list)
//   - Qty is always at least 1
//   - Status is any non-empty string; no transition graph is enforced
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	trackingID   kernel.TrackingID
	customerName string
	address      string
	item         string
	qty          int
	status       Status
	pickupTime   *time.Time
	assignedTo   string
	amount       float64
	expenses     float64
	metadata     Metadata
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a new Order in "created" status. The tracking identifier is
// fixed here and never changes for the lifetime of the order.
//
// Qty values below 1 default to 1, and zero Amount/Expenses default to 200 and
// 50 respectively, mirroring the forgiving behavior of field extraction.
// Returns a validation error if the id, tracking id, or item is missing.
func NewOrder(id kernel.UUID, trackingID kernel.TrackingID, details Details) (*Order, error) {
	o := &Order{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setItem(details.Item),
	); err != nil {
		return nil, err
	}

	o.customerName = strings.TrimSpace(details.CustomerName)
	o.address = strings.TrimSpace(details.Address)
	o.qty = details.Qty
	if o.qty < 1 {
		o.qty = DefaultQty
	}
	o.pickupTime = details.PickupTime
	o.assignedTo = strings.TrimSpace(details.AssignedTo)
	o.amount = details.Amount
	if o.amount == 0 {
		o.amount = DefaultAmount
	}
	o.expenses = details.Expenses
	if o.expenses == 0 {
		o.expenses = DefaultExpenses
	}
	o.metadata = details.Metadata

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-applying
// creation defaults. Status and createdAt are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	details Details,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setItem(details.Item),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.customerName = details.CustomerName
	o.address = details.Address
	o.qty = details.Qty
	if o.qty < 1 {
		o.qty = DefaultQty
	}
	o.status = status
	o.pickupTime = details.PickupTime
	o.assignedTo = details.AssignedTo
	o.amount = details.Amount
	o.expenses = details.Expenses
	o.metadata = details.Metadata
	o.createdAt = createdAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingID returns the human-facing order identifier.
func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

// CustomerName returns the customer's name, if one was captured.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Address returns the delivery address, if one was captured.
func (o *Order) Address() string {
	return o.address
}

// Item returns the ordered item text. Composite orders are a comma-joined list.
func (o *Order) Item() string {
	return o.item
}

// Qty returns the quantity, always at least 1.
func (o *Order) Qty() int {
	return o.qty
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PickupTime returns the scheduled pickup time, or nil if none is set.
func (o *Order) PickupTime() *time.Time {
	return o.pickupTime
}

// AssignedTo returns the assignee's name, if any.
func (o *Order) AssignedTo() string {
	return o.assignedTo
}

// Amount returns the order amount.
func (o *Order) Amount() float64 {
	return o.amount
}

// Expenses returns the order expenses.
func (o *Order) Expenses() float64 {
	return o.expenses
}

// Metadata returns the creation provenance of the order.
func (o *Order) Metadata() Metadata {
	return o.metadata
}

// CreatedAt returns the creation timestamp as recorded by the store.
// Zero for orders that have not been persisted yet.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// SetStatus overwrites the order status with any non-empty value.
// Arbitrary statuses are accepted; see Status.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// SetAddress replaces the delivery address.
func (o *Order) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// AssignTo records the person responsible for the order.
func (o *Order) AssignTo(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("assignedTo")
	}
	o.assignedTo = name
	return nil
}

// SchedulePickup sets the absolute pickup time.
func (o *Order) SchedulePickup(t time.Time) {
	o.pickupTime = &t
}

// Cancel marks the order as cancelled. Cancellation only changes the status;
// the order remains in the store until explicitly deleted.
func (o *Order) Cancel() {
	o.status = StatusCancelled
}

// AddItems appends items to the order's item list, comma-joined.
// Blank entries are skipped.
func (o *Order) AddItems(items []string) {
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if o.item == "" {
			o.item = it
		} else {
			o.item += ", " + it
		}
	}
}

// RemoveItems removes each named item from the item list using case-insensitive
// whole-word matching, then normalizes leftover comma punctuation. Items that do
// not appear in the list are ignored. A removal that would leave the list empty
// is refused: the item list stays unchanged and ErrLastItemCannotBeRemoved is
// returned, since item is a required field.
func (o *Order) RemoveItems(items []string) error {
	current := o.item
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(it) + `\b`)
		if err != nil {
			continue
		}
		current = re.ReplaceAllString(current, "")
	}

	cleaned := normalizeItemList(current)
	if cleaned == "" {
		return ErrLastItemCannotBeRemoved
	}
	o.item = cleaned
	return nil
}

// normalizeItemList collapses the comma-separated list left behind after
// removals: empty segments disappear and spacing is rebuilt as ", ".
func normalizeItemList(s string) string {
	parts := strings.Split(s, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	return strings.Join(cleaned, ", ")
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	o.trackingID = trackingID
	return nil
}

func (o *Order) setItem(item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return errs.NewValueIsRequiredError("item")
	}
	o.item = item
	return nil
}
