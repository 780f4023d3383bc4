package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"capetown/config"
	bookingRepo "capetown/database/repository/booking"
	"capetown/models"
	"capetown/services/notification"

	"github.com/hibiken/asynq"
)

const TypePaymentReminder = "reminder:payment"

// ReminderScheduler enqueues delayed payment reminders on the asynq
// queue. It satisfies the booking service's scheduler interface.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(redisOpts()),
	}
}

func (s *ReminderScheduler) SchedulePaymentReminder(ctx context.Context, payload models.PaymentReminderPayload, delay time.Duration) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypePaymentReminder, b)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("enqueue payment reminder: %w", err)
	}
	return nil
}

func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReminder, handlePaymentReminder(repo, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handlePaymentReminder re-reads the booking when the task fires and only
// nudges the user if payment is still outstanding.
func handlePaymentReminder(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PaymentReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		booking, err := repo.GetByID(ctx, p.BookingID)
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if booking.Status != models.BookingStatusPendingPayment {
			return nil
		}

		title := "Complete your booking"
		body := fmt.Sprintf("Your booking for %s is still awaiting payment. Finish checkout to secure your spot!", p.ItemName)
		data := map[string]string{
			"bookingId": p.BookingID,
			"type":      "payment_reminder",
		}

		if err := notifSvc.SendUserPushNotification(ctx, p.UserID, title, body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
		}
		return nil
	}
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}
