package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nimtoz/config"

	"github.com/hibiken/asynq"
)

// Task type names consumed by the queue worker.
const (
	TypeBookingRequested = "booking:requested"
	TypeBookingDecided   = "booking:decided"
	TypePasswordReset    = "user:password_reset"
)

// AsynqProducer enqueues notification tasks on the Redis-backed queue.
type AsynqProducer struct {
	client *asynq.Client
}

// NewAsynqProducer builds a producer pointed at the queue Redis DB.
func NewAsynqProducer() *AsynqProducer {
	return &AsynqProducer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// Close releases the underlying queue connection.
func (p *AsynqProducer) Close() error {
	return p.client.Close()
}

func (p *AsynqProducer) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}
	task := asynq.NewTask(taskType, data)
	if _, err := p.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	); err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", taskType, err)
	}
	return nil
}

func (p *AsynqProducer) EnqueueBookingRequested(ctx context.Context, payload BookingRequestedPayload) error {
	return p.enqueue(ctx, TypeBookingRequested, payload)
}

func (p *AsynqProducer) EnqueueBookingDecided(ctx context.Context, payload BookingDecidedPayload) error {
	return p.enqueue(ctx, TypeBookingDecided, payload)
}

func (p *AsynqProducer) EnqueuePasswordReset(ctx context.Context, payload PasswordResetPayload) error {
	return p.enqueue(ctx, TypePasswordReset, payload)
}
