package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientStorageUnavailable            = "storage unavailable"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevStorageUnavailable     = "persistence layer unavailable during %s"
	ErrDevRedisGetNoData         = "failed to get data from redis with key %s"
	ErrDevRedisSetData           = "failed to set data to redis"
	ErrDevRedisDeleteData        = "failed to delete data from redis"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
	ErrDevRequestBodyTooLarge    = "request body exceeds configured limit"
	ErrDevUnknownPanic           = "unknown error"
)
