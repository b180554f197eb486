package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingPageIDKey         = "page_id"
	LoggingLocaleKey         = "locale"
	LoggingOutcomeKey        = "outcome"
	LoggingRedirectURLKey    = "redirect_url"
	LoggingDestinationKey    = "destination"
	LoggingWebhookURLKey     = "webhook_url"
	LoggingNotificationIDKey = "notification_id"
	LoggingSettingsKey       = "settings_key"
	LoggingQueueNameKey      = "queue_name"
	LoggingFetchedCountKey   = "fetched_count"
	LoggingPageCountKey      = "page_count"
)
