package utils

import (
	"context"
	"log"
	"time"

	"nimtoz/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (dashboard stats, hot lists).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for refresh-token storage.
	AuthCacheClient *redis.Client
	// OTPCacheClient holds short-lived password reset tokens.
	OTPCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       db,
	})
}

func mustPing(client *redis.Client, purpose string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", purpose, err)
	}
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	mustPing(CacheClient, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for refresh-token storage.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	mustPing(AuthCacheClient, "Auth Cache")
}

// GetAuthCacheClient returns the Redis client for refresh-token storage.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitOTPCache initializes the Redis client for password reset tokens.
func InitOTPCache() {
	OTPCacheClient = newRedisClient(config.AppConfig.RedisOTPDB)
	mustPing(OTPCacheClient, "OTP Cache")
}

// GetOTPCacheClient returns the Redis client for password reset tokens.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	InitCache()
	InitAuthCache()
	InitOTPCache()
}
