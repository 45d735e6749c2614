package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the redis wrapper the usecases need. A nil-safe
// implementation that always misses is a valid Cache.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}
