package redis

import (
	"context"
	"errors"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) Generation(ctx context.Context, generationKey string) (int64, error) {
	generation, err := r.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, exceptions.ErrRedisGetNoData(err, generationKey)
	}
	return generation, nil
}

// SetIfGeneration watches generationKey so an Invalidate landing between the
// comparison and the SET aborts the transaction instead of resurrecting a
// list read before the write.
func (r *redisRepository) SetIfGeneration(ctx context.Context, key string, value interface{}, exp time.Duration, generationKey string, generation int64) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	stored := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, jsonValue, exp)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	} else if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return stored, nil
}

func (r *redisRepository) Invalidate(ctx context.Context, key, generationKey string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
