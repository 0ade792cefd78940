package utils

import (
	"context"
	"sync"
	"time"

	"nimtoz/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// RedisHealth reports reachability of each Redis slot the application uses.
type RedisHealth struct {
	Cache bool `json:"cache"`
	Auth  bool `json:"auth"`
	OTP   bool `json:"otp"`
	Queue bool `json:"queue"`
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool        `json:"mongo"`
	Redis     RedisHealth `json:"redis"`
	CheckedAt time.Time   `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func ping(ctx context.Context, client *redis.Client) bool {
	return client.Ping(ctx).Err() == nil
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The asynq queue DB gets its own client here; the worker owns its
// connections.
func StartHealthMonitor(mongoClient *mongo.Client) {
	queueClient := newRedisClient(config.AppConfig.RedisQueueDB)

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				Mongo: mongoClient.Ping(ctx, nil) == nil,
				Redis: RedisHealth{
					Cache: ping(ctx, GetCacheClient()),
					Auth:  ping(ctx, GetAuthCacheClient()),
					OTP:   ping(ctx, GetOTPCacheClient()),
					Queue: ping(ctx, queueClient),
				},
				CheckedAt: time.Now(),
			}

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
