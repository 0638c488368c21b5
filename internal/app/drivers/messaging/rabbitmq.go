package messaging

import (
	"fmt"
	"healthrecord-service/internal/app/config"
	"strconv"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const recordEventsConnectionName = "healthrecord-service record events"

// RecordEventsURI builds the broker address from config. Credentials are
// escaped by amqp091 so passwords may contain '@' or ':'.
func RecordEventsURI(rabbitMQ config.RabbitMQ) (string, error) {
	port, err := strconv.Atoi(rabbitMQ.Port)
	if err != nil {
		return "", fmt.Errorf("invalid rabbitmq port %q: %w", rabbitMQ.Port, err)
	}

	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     rabbitMQ.Host,
		Port:     port,
		Username: rabbitMQ.Username,
		Password: rabbitMQ.Password,
		Vhost:    rabbitMQ.Vhost,
	}
	return uri.String(), nil
}

// NewRabbitMQ connects the record event publisher. It is only called when an
// events queue is configured, so any failure stops the process.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	uri, err := RecordEventsURI(driverConfig.RabbitMQ)
	if err != nil {
		log.Fatal("Invalid RabbitMQ configuration for record events", zap.Error(err))
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(recordEventsConnectionName)

	conn, err := amqp091.DialConfig(uri, amqp091.Config{
		Properties: properties,
		Heartbeat:  10 * time.Second,
		Locale:     "en_US",
	})
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ for record events",
			zap.String("host", driverConfig.RabbitMQ.Host),
			zap.String("vhost", driverConfig.RabbitMQ.Vhost),
			zap.Error(err),
		)
	}
	log.Info("Connected to RabbitMQ, record events enabled",
		zap.String("host", driverConfig.RabbitMQ.Host),
	)
	return conn
}
