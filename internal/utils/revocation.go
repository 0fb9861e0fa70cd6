package utils

import (
	"context" // Context for Redis operations
	"time"    // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

const revokedKeyPrefix = "revoked:jti:"

// RevokeToken marks a token id as revoked until ttl elapses
func RevokeToken(ctx context.Context, rdb *redis.Client, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // Already expired, nothing to remember
	}
	return rdb.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err()
}

// IsTokenRevoked reports whether a token id was revoked
func IsTokenRevoked(ctx context.Context, rdb *redis.Client, jti string) (bool, error) {
	n, err := rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
