package cron

import (
	"context"
	"encoding/json"
	"time"

	"nimtoz/config"
	"nimtoz/services/notification"
	"nimtoz/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async notification worker in background.
func InitNotificationWorker(notifier notification.Notifier) {
	logger := utils.GetLogger().With(zap.String("component", "notificationWorker"))

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(notification.TypeBookingRequested, handleBookingRequested(notifier, logger))
	mux.HandleFunc(notification.TypeBookingDecided, handleBookingDecided(notifier, logger))
	mux.HandleFunc(notification.TypePasswordReset, handlePasswordReset(notifier, logger))

	go monitorRedisConnection(logger)

	// Start async worker with retry logic.
	go func() {
		logger.Info("Starting async notification worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Failed to start notification worker",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Max retry attempts reached, giving up on notification worker")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingRequested(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.BookingRequestedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid booking request payload", zap.Error(err))
			return err
		}
		if err := notifier.SendBookingRequested(ctx, p); err != nil {
			logger.Error("Failed to deliver booking request notification",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handleBookingDecided(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.BookingDecidedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid booking decision payload", zap.Error(err))
			return err
		}
		if err := notifier.SendBookingDecided(ctx, p); err != nil {
			logger.Error("Failed to deliver booking decision notification",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handlePasswordReset(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.PasswordResetPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid password reset payload", zap.Error(err))
			return err
		}
		if err := notifier.SendPasswordReset(ctx, p); err != nil {
			logger.Error("Failed to deliver password reset email",
				zap.String("email", p.Email), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue Redis periodically to detect
// failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Queue Redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
