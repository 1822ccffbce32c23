// Package jobs provides scheduled background tasks for the storefront.
//
// The only job today is FulfillmentJob, which runs every few seconds and
// moves the oldest pending order into processing. Order placement returns to
// the customer immediately; fulfillment pickup happens here, outside any
// request.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(processPendingHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The job treats "no pending orders" as an idle tick, not an error.
package jobs
