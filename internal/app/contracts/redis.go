package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	// Generation returns the counter bumped by Invalidate, zero when unset.
	Generation(ctx context.Context, generationKey string) (int64, error)
	// SetIfGeneration stores value only while generationKey still holds
	// generation. It reports whether the value was written.
	SetIfGeneration(ctx context.Context, key string, value interface{}, exp time.Duration, generationKey string, generation int64) (bool, error)
	// Invalidate bumps generationKey and drops key in one transaction.
	Invalidate(ctx context.Context, key, generationKey string) error
}
