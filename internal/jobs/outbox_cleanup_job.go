package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastex/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CleanupNotificationsHandler is the use case behind OutboxCleanupJob.
type CleanupNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.CleanupNotificationsCommand) (int64, error)
}

// OutboxCleanupJob deletes forwarded notifications older than the retention
// period. Runs at the top of every hour.
type OutboxCleanupJob struct {
	handler   CleanupNotificationsHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxCleanupJob creates the job.
func NewOutboxCleanupJob(handler CleanupNotificationsHandler, retention time.Duration, logger *slog.Logger) *OutboxCleanupJob {
	return &OutboxCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_cleanup_job"),
	}
}

// Start schedules the job.
func (j *OutboxCleanupJob) Start() error {
	if _, err := commands.NewCleanupNotificationsCommand(j.retention); err != nil {
		return err
	}

	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job started (running hourly)", "retention", j.retention)
	return nil
}

// Run performs one cleanup.
func (j *OutboxCleanupJob) Run(ctx context.Context) {
	cmd, err := commands.NewCleanupNotificationsCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup job misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Published notifications removed", "count", deleted)
}

// Stop stops the job and waits for a running cleanup to finish.
func (j *OutboxCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job stopped")
}
