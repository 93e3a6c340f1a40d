package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"glambook/config"
	"glambook/services/availability"
	"glambook/services/tasks"
	"glambook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitExpiryWorker runs the async worker in background. It consumes
// booking:expire tasks and cancels reservations still PENDING after their
// hold window.
func InitExpiryWorker(engine availability.Engine) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeExpireBooking, handleExpiryTask(engine))

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleExpiryTask(engine availability.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid expiry payload", zap.Error(err))
			return err
		}

		fired, err := engine.ExpirePending(ctx, p.BookingID)
		if err != nil {
			utils.GetLogger().Error("failed to expire booking",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		if fired {
			utils.GetLogger().Info("pending booking expired",
				zap.String("bookingID", p.BookingID))
		}
		return nil
	}
}
