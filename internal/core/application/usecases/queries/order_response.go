package queries

import (
	"database/sql"
	"time"
)

// OrderResponse is the read-model row shared by the order queries. It carries
// everything a conversational reply needs without exposing the aggregate.
type OrderResponse struct {
	TrackingID   string
	CustomerName string
	Address      string
	Item         string
	Qty          int
	Status       string
	PickupTime   *time.Time
	AssignedTo   string
	Amount       float64
	Expenses     float64
	CreatedAt    time.Time
}

// orderColumns is the select list matching scanOrderRow's scan order.
const orderColumns = `
	tracking_id,
	customer_name,
	address,
	item,
	qty,
	status,
	pickup_time,
	assigned_to,
	amount,
	expenses,
	created_at
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var pickupTime sql.NullTime

	err := rows.Scan(
		&resp.TrackingID,
		&resp.CustomerName,
		&resp.Address,
		&resp.Item,
		&resp.Qty,
		&resp.Status,
		&pickupTime,
		&resp.AssignedTo,
		&resp.Amount,
		&resp.Expenses,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if pickupTime.Valid {
		t := pickupTime.Time
		resp.PickupTime = &t
	}

	return resp, nil
}
