package constvars

// Persisted option keys. The names match the ones the settings page has always written.
const (
	SettingsKeyWebhookURL   = "double_optin_webhook_url"
	SettingsKeyAPIPrefix    = "double_optin_api_prefix"
	SettingsKeyDateFormat   = "double_optin_date_format"
	SettingsKeyLandingPage  = "double_optin_redirect_page"
	SettingsKeyExpiredPage  = "double_optin_expired_page"
	SettingsKeyErrorPage    = "double_optin_error_page"
	DefaultSettingsPrefix   = "double-optin"
	DefaultSettingsDateForm = "MM-DD-YYYY"
)

const (
	FallbackPathLanding = "/thank-you"
	FallbackPathExpired = "/expired"
	FallbackPathError   = "/error"
)

const (
	MongoCollectionOptions = "options"
	MongoCollectionPages   = "pages"
)

const (
	RedisKeyPageByID          = "double_optin:page:id:%s"
	RedisKeyPageTranslation   = "double_optin:page:translation:%s:%s"
	RedisKeyNotificationLock  = "double_optin:notification:worker:lock"
	DefaultNotificationQueue  = "double_optin_webhook_queue"
	DefaultWorkerIntervalSecs = 5
	DefaultWorkerBatchSize    = 50
	DefaultWebhookTimeoutMS   = 3000
)
