// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orderchat/internal/core/application/usecases/queries"
	"orderchat/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// NextPickupHandler is the read seam the reminder job polls.
type NextPickupHandler interface {
	Handle(ctx context.Context, query queries.NextPickupQuery) (queries.OrderResponse, error)
}

// PickupReminderJob periodically surfaces the next scheduled pickup in the
// logs. It only reads; operators watch the log stream, no state changes.
type PickupReminderJob struct {
	handler NextPickupHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReminderJob creates a reminder job polling NextPickup every minute.
func NewPickupReminderJob(handler NextPickupHandler, logger *slog.Logger) *PickupReminderJob {
	return &PickupReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pickup_reminder_job"),
	}
}

// Start begins the reminder job on a once-per-minute schedule.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		resp, err := j.handler.Handle(ctx, queries.NewNextPickupQuery())
		if errors.Is(err, errs.ErrObjectNotFound) {
			// Nothing scheduled; not worth a log line every minute.
			return
		}
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup reminder job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Upcoming pickup",
			"trackingId", resp.TrackingID,
			"item", resp.Item,
			"pickupTime", resp.PickupTime,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}
