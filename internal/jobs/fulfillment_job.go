package jobs

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob periodically picks up pending orders and moves them to
// processing. One order per tick keeps each run short and lets the
// optimistic version check resolve races with customer cancellations.
type FulfillmentJob struct {
	handler commands.ProcessPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFulfillmentJob creates the fulfillment pickup job.
func NewFulfillmentJob(handler commands.ProcessPendingOrderCommandHandler, logger *slog.Logger) *FulfillmentJob {
	return &FulfillmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fulfillment_job"),
	}
}

// Start begins the fulfillment job, running every five seconds.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewProcessPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if !errors.Is(err, commands.ErrNoPendingOrders) {
				j.logger.ErrorContext(ctx, "Fulfillment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started (running every five seconds)")
	return nil
}

// Stop stops the fulfillment job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}
