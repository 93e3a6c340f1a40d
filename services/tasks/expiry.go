package tasks

import (
	"encoding/json"
	"time"

	"glambook/config"

	"github.com/hibiken/asynq"
)

// TypeExpireBooking cancels a reservation that was never confirmed within
// the pending-hold window.
const TypeExpireBooking = "booking:expire"

// ExpiryPayload identifies the booking to expire.
type ExpiryPayload struct {
	BookingID string `json:"bookingId"`
}

// NewExpiryTask schedules a pending-booking expiry at fireAt.
func NewExpiryTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ExpiryPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeExpireBooking, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewQueueClient returns an asynq client on the task-queue Redis DB.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}
