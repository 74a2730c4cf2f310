package interpreter

import (
	"time"

	"orderchat/internal/core/application/usecases/queries"
	"orderchat/internal/core/domain/model/order"
)

// Action names the outcome of one interpreted utterance. The boundary exposes
// it verbatim so clients can branch on what happened without parsing replies.
type Action string

const (
	ActionCreatedOrder  Action = "created_order"
	ActionTrackOrder    Action = "track_order"
	ActionOrderNotFound Action = "order_not_found"
	ActionNextPickup    Action = "next_pickup"
	ActionNoPickups     Action = "no_pickups"
	ActionListOrders    Action = "list_orders"
	ActionCancelOrder   Action = "cancel_order"
	ActionAskForOrderID Action = "ask_for_order_id"
	ActionUpdateAddress Action = "update_address"
	ActionAskForAddress Action = "ask_for_address"
	ActionUpdateOrder   Action = "update_order"
	ActionDeleteOrder   Action = "delete_order"
	ActionLLMReply      Action = "llm_reply"
	ActionFallback      Action = "fallback"
)

// Result is the interpreter's answer to one utterance.
type Result struct {
	Reply      string      `json:"reply"`
	Action     Action      `json:"action"`
	Order      *OrderView  `json:"order,omitempty"`
	Orders     []OrderView `json:"orders,omitempty"`
	TrackingID string      `json:"trackingId,omitempty"`
	Err        string      `json:"error,omitempty"`
}

// OrderView is the outward-facing order shape embedded in results.
type OrderView struct {
	TrackingID   string     `json:"trackingId"`
	CustomerName string     `json:"customerName,omitempty"`
	Address      string     `json:"address,omitempty"`
	Item         string     `json:"item"`
	Qty          int        `json:"qty"`
	Status       string     `json:"status"`
	PickupTime   *time.Time `json:"pickupTime,omitempty"`
	AssignedTo   string     `json:"assignedTo,omitempty"`
	Amount       float64    `json:"amount"`
	Expenses     float64    `json:"expenses"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func viewFromOrder(o *order.Order) *OrderView {
	return &OrderView{
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
		CreatedAt:    o.CreatedAt(),
	}
}

func viewFromResponse(resp queries.OrderResponse) *OrderView {
	return &OrderView{
		TrackingID:   resp.TrackingID,
		CustomerName: resp.CustomerName,
		Address:      resp.Address,
		Item:         resp.Item,
		Qty:          resp.Qty,
		Status:       resp.Status,
		PickupTime:   resp.PickupTime,
		AssignedTo:   resp.AssignedTo,
		Amount:       resp.Amount,
		Expenses:     resp.Expenses,
		CreatedAt:    resp.CreatedAt,
	}
}
