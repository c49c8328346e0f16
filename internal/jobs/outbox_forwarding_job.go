package jobs

import (
	"context"
	"log/slog"

	"fastex/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ForwardNotificationsHandler is the use case behind OutboxForwardingJob.
type ForwardNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.ForwardNotificationsCommand) (int, error)
}

// OutboxForwardingJob publishes queued booking notifications to the broker.
// Runs every five seconds.
type OutboxForwardingJob struct {
	handler   ForwardNotificationsHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxForwardingJob creates the job. Each run forwards at most batchSize notifications.
func NewOutboxForwardingJob(handler ForwardNotificationsHandler, batchSize int, logger *slog.Logger) *OutboxForwardingJob {
	return &OutboxForwardingJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_forwarding_job"),
	}
}

// Start schedules the job.
func (j *OutboxForwardingJob) Start() error {
	if _, err := commands.NewForwardNotificationsCommand(j.batchSize); err != nil {
		return err
	}

	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox forwarding job started (running every 5 seconds)")
	return nil
}

// Run forwards one batch.
func (j *OutboxForwardingJob) Run(ctx context.Context) {
	cmd, err := commands.NewForwardNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox forwarding job misconfigured", "error", err)
		return
	}

	forwarded, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox forwarding job failed", "forwarded", forwarded, "error", err)
		return
	}
	if forwarded > 0 {
		j.logger.DebugContext(ctx, "Notifications forwarded", "count", forwarded)
	}
}

// Stop stops the job and waits for a running batch to finish.
func (j *OutboxForwardingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox forwarding job stopped")
}
