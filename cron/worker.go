package cron

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"

	"barberbook/config"
	"barberbook/services/availability"
	"barberbook/services/tasks"
)

// InitAvailabilityWorker runs the async worker that rebuilds availability
// windows in the background.
func InitAvailabilityWorker(availSvc availability.AvailabilityService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAvailabilityRegenerate, handleRegenerateTask(availSvc))

	go func() {
		log.Println("[AvailabilityWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[AvailabilityWorker] failed to start worker: %v", err)
		}
	}()
}

func handleRegenerateTask(availSvc availability.AvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RegeneratePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AvailabilityWorker] invalid payload: %v", err)
			return err
		}

		result, err := availSvc.GenerateWindow(ctx, p.BarberID, p.Days)
		if err != nil {
			log.Printf("[AvailabilityWorker] regeneration failed for barber %s: %v", p.BarberID, err)
			return err
		}
		log.Printf("[AvailabilityWorker] regenerated %d days (%d slots) for barber %s",
			result.DaysGenerated, result.SlotsCreated, p.BarberID)
		return nil
	}
}
