// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"goldenbay/config"

	"github.com/go-redis/redis/v8"
)

var (
	// WizardCacheClient stores in-progress reservation wizard sessions.
	WizardCacheClient *redis.Client
	// SessionCacheClient stores staff sessions and their upstream token pairs.
	SessionCacheClient *redis.Client
)

// InitWizardCache initializes the Redis client for wizard session storage.
func InitWizardCache() {
	WizardCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWizardDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := WizardCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Wizard): %v", err)
	}
}

// GetWizardCacheClient returns the wizard session client.
func GetWizardCacheClient() *redis.Client {
	if WizardCacheClient == nil {
		InitWizardCache()
	}
	return WizardCacheClient
}

// InitSessionCache initializes the Redis client for staff session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionCacheClient returns the staff session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitRedis eagerly connects both Redis clients at startup.
func InitRedis() {
	InitWizardCache()
	InitSessionCache()
}
