package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App          App
		Language     Language
		Notification Notification
		Page         Page
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		BaseUrl                  string
		Timezone                 string
		DefaultAPIPrefix         string
		AdminAPIKey              string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
		RequestTimeoutInSeconds  int
	}

	// Language drives page resolution. With MultiLanguageEnabled off every page resolves to its
	// own permalink and the request locale is ignored.
	Language struct {
		MultiLanguageEnabled bool
		Default              string
		Supported            []string
	}

	Notification struct {
		Driver                  string
		HTTPTimeoutInMillis     int
		QueueName               string
		WorkerIntervalInSeconds int
		WorkerBatchSize         int
	}

	Page struct {
		CacheTTLInSeconds int
	}
)
