package config

import "time"

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	InternalConfig struct {
		App App
	}

	ClientConfig struct {
		RecordStore RecordStore
		Logger      Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
		// RecordCacheTTLInSeconds disables the redis list cache when zero
		RecordCacheTTLInSeconds   int
		WriteMaxRequestsPerSecond int
		WriteBlockTimeInSeconds   int
		// RabbitMQRecordEventsQueue disables record events when empty
		RabbitMQRecordEventsQueue string
	}

	MongoDB struct {
		URI                             string
		Port                            string
		Host                            string
		DbName                          string
		Username                        string
		Password                        string
		ServerSelectionTimeoutInSeconds int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
		Vhost    string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RecordStore struct {
		BaseUrl string
		Timeout time.Duration
	}
)
