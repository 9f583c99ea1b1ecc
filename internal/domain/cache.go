package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the port for the Redis-backed views: answer keys, leaderboard
// snapshots and quiz sessions.
type Cache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites key. An expiration of 0 keeps it indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error

	HGet(ctx context.Context, key, field string) (string, error)

	// HGetAll returns ErrCacheMiss when the hash does not exist.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// HSetWithTTL writes all fields and the expiration in one round trip.
	HSetWithTTL(ctx context.Context, key string, fields map[string]string, expiration time.Duration) error
}
