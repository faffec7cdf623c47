package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"barberbook/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// AvailabilityCacheKey builds the cache key for an available-slots query.
func AvailabilityCacheKey(barberID, date string, durationMinutes int) string {
	return fmt.Sprintf("%s%s:%s:%d", AvailabilityCachePrefix, barberID, date, durationMinutes)
}

// InvalidateAvailabilityCache drops all cached available-slot results for a
// barber on a given date. Called after any slot mutation.
func InvalidateAvailabilityCache(ctx context.Context, client *redis.Client, barberID, date string) {
	pattern := fmt.Sprintf("%s%s:%s:*", AvailabilityCachePrefix, barberID, date)
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("failed to invalidate availability cache", zap.Error(err))
	}
}
