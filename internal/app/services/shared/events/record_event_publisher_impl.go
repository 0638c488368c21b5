package events

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/responses"
	"healthrecord-service/internal/pkg/exceptions"
	"healthrecord-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type recordEventPublisher struct {
	mu      sync.Mutex
	channel amqpChannel
	queue   string
	now     func() time.Time
}

// NewRecordEventPublisher opens a dedicated channel and declares queue as a
// durable queue so events survive a broker restart.
func NewRecordEventPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.RecordEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return newRecordEventPublisher(channel, queue), nil
}

func newRecordEventPublisher(channel amqpChannel, queue string) *recordEventPublisher {
	return &recordEventPublisher{
		channel: channel,
		queue:   queue,
		now:     time.Now,
	}
}

func (p *recordEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	event := responses.RecordEvent{
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Data:       data,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         eventType,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	return nil
}

func (p *recordEventPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.Close()
}

// PublishAfterWrite publishes an event for a write that is already durable.
// Failures are logged only, they never change the acknowledgement. A nil
// publisher means record events are disabled.
func PublishAfterWrite(ctx context.Context, publisher contracts.RecordEventPublisher, log *zap.Logger, eventType string, data interface{}) {
	if publisher == nil {
		return
	}
	err := publisher.Publish(ctx, eventType, data)
	if err != nil {
		log.Warn("record event not published",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
