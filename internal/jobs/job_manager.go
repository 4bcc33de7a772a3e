package jobs

import (
	"fmt"
	"log/slog"

	"secureorder/internal/core/application/usecases/commands"
	"secureorder/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxDispatchJob *OutboxDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the outbox repository and the processing handler to wire up dispatch.
func NewJobManager(
	outboxRepo ports.OutboxRepository,
	processHandler commands.ProcessOrderCommandHandler,
	dispatchBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxDispatchJob: NewOutboxDispatchJob(outboxRepo, processHandler, dispatchBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxDispatchJob.Stop()
}
