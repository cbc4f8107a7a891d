package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"smarttour/config"
	"smarttour/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeSendReminder is the asynq task type for pre-trip payment reminders.
const TypeSendReminder = "reminder:payment"

// NewReminderTask builds an asynq task carrying the reminder payload,
// scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues payment reminders on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewReminderScheduler creates a scheduler backed by the reminder-queue Redis DB.
func NewReminderScheduler(logger *zap.Logger) *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client, logger: logger}
}

// SchedulePaymentReminder enqueues a reminder to fire 24 hours before the
// trip starts. Bookings starting sooner than that get no reminder.
func (s *ReminderScheduler) SchedulePaymentReminder(b models.Booking) error {
	fireAt := b.StartDate.Add(-24 * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		Title:     "Upcoming trip payment due",
		Body:      fmt.Sprintf("Your trip %s starts tomorrow. Please clear the remaining balance.", b.Reference),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	info, err := s.client.Enqueue(task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.logger.Info("payment reminder scheduled",
		zap.String("booking", b.ID),
		zap.String("task", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
