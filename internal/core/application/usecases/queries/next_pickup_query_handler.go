package queries

import (
	"context"

	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/pkg/errs"

	"gorm.io/gorm"
)

// NextPickupQueryHandler retrieves the open order with the earliest scheduled
// pickup time from the database.
type NextPickupQueryHandler struct {
	db *gorm.DB
}

// NewNextPickupQueryHandler creates a handler for upcoming-pickup queries.
// Requires a GORM database connection for query execution.
func NewNextPickupQueryHandler(db *gorm.DB) NextPickupQueryHandler {
	return NextPickupQueryHandler{db: db}
}

// Handle returns the order whose pickup comes first among orders still awaiting
// one. Ties on pickup time fall back to creation order. Returns
// errs.ObjectNotFoundError when no open order has a pickup scheduled.
func (h NextPickupQueryHandler) Handle(ctx context.Context, query NextPickupQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE pickup_time IS NOT NULL
		  AND status IN (?, ?, ?)
		ORDER BY pickup_time ASC, created_at ASC
		LIMIT 1
	`, order.StatusCreated, order.StatusAssigned, order.StatusPending).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("pickup", "upcoming")
	}

	return scanOrderRow(rows)
}
