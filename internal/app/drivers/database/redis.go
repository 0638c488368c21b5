package database

import (
	"context"
	"fmt"
	"healthrecord-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when redis cannot be reached, the list cache is
// optional and the record store keeps serving from mongo without it.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Warn("Could not connect to Redis, record list cache disabled", zap.Error(err))
		rdb.Close()
		return nil
	}

	log.Info("Successfully connected to redis")
	return rdb
}
