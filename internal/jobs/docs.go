// Package jobs provides scheduled background tasks for the booking service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// drain or prune the notification outbox written alongside booking changes.
//
// # Available Jobs
//
// 1. OutboxForwardingJob - every 5 seconds, publishes pending notifications to Kafka
// 2. OutboxCleanupJob - hourly, deletes published notifications past the retention period
//
// # Usage
//
//	jobManager := jobs.NewJobManager(forwardHandler, cleanupHandler, 100, 7*24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Run failures are logged and retried on the next tick. A job with an invalid
// batch size or retention refuses to start, and already started jobs are stopped.
package jobs
