package config

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// EventsStop if set closes the record event channel before RabbitMQ itself
	EventsStop func() error
}

// Shutdown releases the process-scoped connections. Every step runs even
// when an earlier one fails, the failures are joined. Redis, RabbitMQ and
// MongoDB may be nil.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error

	if b.EventsStop != nil {
		err := b.EventsStop()
		if err != nil {
			errs = append(errs, fmt.Errorf("stop record event publisher: %w", err))
		} else {
			log.Println("Successfully stopped record event publisher")
		}
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close rabbitmq: %w", err))
		} else {
			log.Println("Successfully closing RabbitMQ")
		}
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		} else {
			log.Println("Successfully closing Redis")
		}
	}

	if b.MongoDB != nil {
		err := b.MongoDB.Disconnect(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("disconnect mongodb: %w", err))
		} else {
			log.Println("Successfully closing MongoDB")
		}
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on some platforms.
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return errors.Join(errs...)
}
