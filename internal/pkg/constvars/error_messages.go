package constvars

const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientServerLongRespond             = "The server took too long to respond"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientRouteNotFound                 = "The requested route does not exist"
	ErrClientTooManyRequests               = "Too many requests on single time-frame"
	ErrClientInvalidAPIKey                 = "Invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
)

const (
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevValidationFailed          = "input validation failed"
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevRouteNotFound             = "route prefix %s does not match the configured prefix"
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToIterate         = "failed to iterate documents"
	ErrDevDBFailedToUpsertDocument  = "failed to upsert document"
	ErrDevRedisGetNoData            = "no data found in redis for key %s"
	ErrDevRedisSetData              = "failed to set data in redis"
	ErrDevRedisDeleteData           = "failed to delete data in redis"
	ErrDevRedisSetNX                = "failed to set lock in redis"
	ErrDevRedisUnlock               = "failed to release lock"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevRabbitMQFetchMessage      = "failed to fetch message from queue %s"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevInvalidAPIKey             = "INVALID_API_KEY"
	ErrDevAPIKeyRequired            = "API_KEY_REQUIRED"
	ErrDevAPIKeyNotConfigured       = "admin API key is not configured"
	ErrDevExpirationUnparseable     = "expiration does not match the configured date format"
	ErrDevWebhookNotConfigured      = "webhook URL is not configured"
	ErrDevLinkExpired               = "confirmation link expired"
	ErrDevPageNotFound              = "page %s not found"
	ErrDevTooManyRequests           = "rate limit exceeded"
	ErrDevRecoveredPanic            = "recovered from panic"
)

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"url":          "must be a valid URL",
	"not_blank":    "must not be blank",
	"api_prefix":   "may only contain lowercase letters, digits, dashes and underscores and must not be admin or metrics",
	"date_pattern": "must contain YYYY, MM (or M) and DD (or D) tokens",
	"max":          "must be at most %s characters",
}

var TagsWithParams = map[string]bool{
	"max": true,
}
