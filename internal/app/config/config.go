package config

import (
	"healthrecord-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                             utils.GetEnvString("MONGODB_URI", ""),
			Port:                            utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:                            utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:                          utils.GetEnvString("MONGODB_DB_NAME", "healthrecord"),
			Username:                        utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:                        utils.GetEnvString("MONGODB_PASSWORD", ""),
			ServerSelectionTimeoutInSeconds: utils.GetEnvInt("MONGODB_SERVER_SELECTION_TIMEOUT_IN_SECONDS", 5),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			Vhost:    utils.GetEnvString("RABBITMQ_VHOST", "/"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":5000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RecordCacheTTLInSeconds:    utils.GetEnvInt("APP_RECORD_CACHE_TTL_IN_SECONDS", 30),
			WriteMaxRequestsPerSecond:  utils.GetEnvInt("APP_WRITE_MAX_REQUESTS_PER_SECOND", 5),
			WriteBlockTimeInSeconds:    utils.GetEnvInt("APP_WRITE_BLOCK_TIME_IN_SECONDS", 30),
			RabbitMQRecordEventsQueue:  utils.GetEnvString("APP_RABBITMQ_RECORD_EVENTS_QUEUE", ""),
		},
	}
}

func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		RecordStore: RecordStore{
			BaseUrl: utils.GetEnvString("RECORD_STORE_URL", "http://localhost:5000/api/v1"),
			Timeout: utils.GetEnvDuration("RECORD_STORE_TIMEOUT", 10*time.Second),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "info"),
		},
	}
}
