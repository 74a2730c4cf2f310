package queries

import (
	"context"
	"strings"

	"orderchat/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler retrieves one order row by tracking identifier.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order lookup queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle looks up the order by the normalized tracking id. Returns
// errs.ObjectNotFoundError when no order carries that identifier, including
// tokens that could never be a tracking id.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	trackingID := strings.ToUpper(strings.TrimSpace(query.OrderID()))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE tracking_id = ?
		LIMIT 1
	`, trackingID).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("trackingId", query.OrderID())
	}

	return scanOrderRow(rows)
}
