// Package jobs provides scheduled background tasks for the underwriting service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OutboxDispatchJob - Runs every second to deliver pending processing-topic
// outbox messages to the underwriting pipeline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepo, processHandler, batchSize, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the lag between order creation and
// pipeline processing low without a message broker.
//
// # Error Handling
//
// - A failed message is logged and left pending for the next tick
// - Version conflicts are expected under concurrent processing and not logged
// - Failed job starts will stop any already running jobs
package jobs
