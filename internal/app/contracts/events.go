package contracts

import "context"

type RecordEventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
	Close() error
}
