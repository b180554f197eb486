package config

import (
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "double_optin"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	defaultLanguage := utils.GetEnvString("LANGUAGE_DEFAULT", constvars.DefaultLanguage)
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			BaseUrl:                  utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			DefaultAPIPrefix:         utils.GetEnvString("APP_DEFAULT_API_PREFIX", constvars.DefaultSettingsPrefix),
			AdminAPIKey:              utils.GetEnvString("APP_ADMIN_API_KEY", ""),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Language: Language{
			MultiLanguageEnabled: utils.GetEnvBool("LANGUAGE_MULTI_LANGUAGE_ENABLED", false),
			Default:              defaultLanguage,
			Supported:            utils.GetEnvStringSlice("LANGUAGE_SUPPORTED", []string{defaultLanguage}),
		},
		Notification: Notification{
			Driver:                  utils.GetEnvString("NOTIFICATION_DRIVER", constvars.NotificationDriverDirect),
			HTTPTimeoutInMillis:     utils.GetEnvInt("NOTIFICATION_HTTP_TIMEOUT_IN_MILLIS", constvars.DefaultWebhookTimeoutMS),
			QueueName:               utils.GetEnvString("NOTIFICATION_QUEUE_NAME", constvars.DefaultNotificationQueue),
			WorkerIntervalInSeconds: utils.GetEnvInt("NOTIFICATION_WORKER_INTERVAL_IN_SECONDS", constvars.DefaultWorkerIntervalSecs),
			WorkerBatchSize:         utils.GetEnvInt("NOTIFICATION_WORKER_BATCH_SIZE", constvars.DefaultWorkerBatchSize),
		},
		Page: Page{
			CacheTTLInSeconds: utils.GetEnvInt("PAGE_CACHE_TTL_IN_SECONDS", 300),
		},
	}
}
