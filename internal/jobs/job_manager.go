package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager starts and stops the outbox jobs together.
type JobManager struct {
	outboxForwardingJob *OutboxForwardingJob
	outboxCleanupJob    *OutboxCleanupJob
}

// NewJobManager creates both outbox jobs. batchSize bounds one forwarding run;
// retention is how long published notifications are kept.
func NewJobManager(
	forwardHandler ForwardNotificationsHandler,
	cleanupHandler CleanupNotificationsHandler,
	batchSize int,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxForwardingJob: NewOutboxForwardingJob(forwardHandler, batchSize, logger),
		outboxCleanupJob:    NewOutboxCleanupJob(cleanupHandler, retention, logger),
	}
}

// StartAll starts the forwarding job, then the cleanup job. If the cleanup job
// cannot start, the forwarding job is stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxForwardingJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox forwarding job: %w", err)
	}

	if err := jm.outboxCleanupJob.Start(); err != nil {
		jm.outboxForwardingJob.Stop()
		return fmt.Errorf("failed to start outbox cleanup job: %w", err)
	}

	return nil
}

// StopAll stops both jobs, waiting for running batches.
func (jm *JobManager) StopAll() {
	jm.outboxForwardingJob.Stop()
	jm.outboxCleanupJob.Stop()
}
