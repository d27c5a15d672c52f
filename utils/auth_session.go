// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"goldenbay/models"

	"github.com/go-redis/redis/v8"
)

const StaffSessionPrefix = "staffSession:"

// SaveStaffSession saves a staff session record in Redis with a TTL.
func SaveStaffSession(client *redis.Client, session models.StaffSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal staff session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, StaffSessionPrefix+session.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save staff session: %w", err)
	}
	return nil
}

// GetStaffSession retrieves a staff session record from Redis.
func GetStaffSession(client *redis.Client, sessionID string) (*models.StaffSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, StaffSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session models.StaffSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal staff session: %w", err)
	}
	return &session, nil
}

// DeleteStaffSession removes a staff session record from Redis.
func DeleteStaffSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, StaffSessionPrefix+sessionID).Err()
}
