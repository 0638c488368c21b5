package messaging

import (
	"healthrecord-service/internal/app/config"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEventsURI(t *testing.T) {
	t.Run("Escapes Credentials", func(t *testing.T) {
		uri, err := RecordEventsURI(config.RabbitMQ{
			Host:     "broker.local",
			Port:     "5673",
			Username: "records",
			Password: "p@ss:word",
			Vhost:    "health",
		})
		require.NoError(t, err)

		parsed, err := amqp091.ParseURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "broker.local", parsed.Host)
		assert.Equal(t, 5673, parsed.Port)
		assert.Equal(t, "records", parsed.Username)
		assert.Equal(t, "p@ss:word", parsed.Password)
		assert.Equal(t, "health", parsed.Vhost)
	})

	t.Run("Invalid Port", func(t *testing.T) {
		_, err := RecordEventsURI(config.RabbitMQ{Host: "broker.local", Port: "amqp"})
		assert.ErrorContains(t, err, "invalid rabbitmq port")
	})
}
