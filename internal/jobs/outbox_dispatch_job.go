package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"secureorder/internal/core/application/usecases/commands"
	"secureorder/internal/core/domain/model/kernel"
	"secureorder/internal/core/ports"
	"secureorder/internal/pkg/errs"
)

// OutboxDispatchJob delivers pending processing-topic messages to the
// underwriting pipeline. Runs every second so newly created orders start
// processing almost immediately.
//
// Delivery is at-least-once: a message is marked dispatched only after its
// order was processed successfully, so a crash or a failed pass leaves the
// row pending and the next tick retries it.
type OutboxDispatchJob struct {
	outboxRepo     ports.OutboxRepository
	processHandler commands.ProcessOrderCommandHandler
	batchSize      int
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewOutboxDispatchJob creates a job delivering outbox messages.
// Each tick drains at most batchSize pending messages from the processing topic.
func NewOutboxDispatchJob(
	outboxRepo ports.OutboxRepository,
	processHandler commands.ProcessOrderCommandHandler,
	batchSize int,
	logger *slog.Logger,
) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		outboxRepo:     outboxRepo,
		processHandler: processHandler,
		batchSize:      batchSize,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "outbox_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *OutboxDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.dispatchPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *OutboxDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}

// dispatchPending delivers one batch of pending processing messages.
// A failed message is logged and left pending; the rest of the batch still runs.
func (j *OutboxDispatchJob) dispatchPending(ctx context.Context) error {
	messages, err := j.outboxRepo.GetPending(ctx, ports.TopicOrderProcessing, j.batchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := j.dispatch(ctx, message); err != nil {
			// Version conflicts are expected under concurrent processing;
			// the message stays pending and the next tick retries it.
			if !errors.Is(err, errs.ErrVersionConflict) {
				j.logger.ErrorContext(ctx, "Failed to dispatch outbox message",
					"message_id", message.ID.String(), "error", err)
			}
			continue
		}

		if err := j.outboxRepo.MarkDispatched(ctx, message.ID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark outbox message dispatched",
				"message_id", message.ID.String(), "error", err)
		}
	}

	return nil
}

func (j *OutboxDispatchJob) dispatch(ctx context.Context, message ports.OutboxMessage) error {
	var event ports.OrderStatusEvent
	if err := json.Unmarshal(message.Payload, &event); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return err
	}

	return j.processHandler.Handle(ctx, cmd)
}
