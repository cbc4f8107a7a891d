package cron

import (
	"context"
	"encoding/json"
	"time"

	"smarttour/config"
	bookingRepo "smarttour/database/repository/booking"
	userRepo "smarttour/database/repository/user"
	"smarttour/models"
	"smarttour/services/tasks"
	"smarttour/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// terminal booking states where a reminder no longer applies
var skipStatuses = map[string]bool{
	"completed": true,
	"cancelled": true,
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, users userRepo.UserRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookings, users, logger))

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("reminder worker gave up after max attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers a payment reminder as an in-app notification,
// skipping bookings that have since been cancelled, completed, or fully paid.
func handleReminderTask(bookings bookingRepo.BookingRepository, users userRepo.UserRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			logger.Error("failed to load booking for reminder",
				zap.String("booking", p.BookingID), zap.Error(err))
			return err
		}
		if b == nil || skipStatuses[b.BookingStatus] {
			logger.Info("skipping reminder for inactive booking",
				zap.String("booking", p.BookingID))
			return nil
		}
		if b.PaymentStatus == models.PaymentCompleted || b.RemainingAmount <= 0 {
			logger.Info("skipping reminder, booking fully paid",
				zap.String("booking", p.BookingID))
			return nil
		}

		n := models.Notification{
			ID:      uuid.New().String(),
			Type:    "payment-reminder",
			Message: p.Body,
			Data: map[string]interface{}{
				"bookingId":       b.ID,
				"reference":       b.Reference,
				"remainingAmount": b.RemainingAmount,
			},
			CreatedAt: time.Now(),
		}
		if err := users.AppendNotification(p.UserID, n); err != nil {
			logger.Error("failed to deliver reminder notification",
				zap.String("booking", p.BookingID), zap.Error(err))
			return err
		}

		logger.Info("payment reminder delivered",
			zap.String("booking", p.BookingID), zap.String("user", p.UserID))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("reminder queue redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
