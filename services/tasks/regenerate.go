package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"barberbook/config"
)

// TypeAvailabilityRegenerate is the task type for rebuilding a barber's
// future availability window.
const TypeAvailabilityRegenerate = "availability:regenerate"

// RegeneratePayload identifies whose window to rebuild and how far ahead.
type RegeneratePayload struct {
	BarberID string `json:"barberId"`
	Days     int    `json:"days"`
}

// NewRegenerateTask builds an asynq task for availability regeneration.
func NewRegenerateTask(barberID string, days int) (*asynq.Task, error) {
	b, err := json.Marshal(RegeneratePayload{BarberID: barberID, Days: days})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAvailabilityRegenerate, b), nil
}

// Enqueuer queues background work for the availability worker.
type Enqueuer interface {
	EnqueueRegenerate(ctx context.Context, barberID string, days int) error
}

// AsynqEnqueuer is the production Enqueuer backed by the Redis task queue.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

// NewAsynqEnqueuer creates an enqueuer connected to the configured Redis queue.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

func (e *AsynqEnqueuer) EnqueueRegenerate(ctx context.Context, barberID string, days int) error {
	task, err := NewRegenerateTask(barberID, days)
	if err != nil {
		return fmt.Errorf("failed to build regenerate task: %w", err)
	}
	if _, err := e.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue regenerate task: %w", err)
	}
	return nil
}
