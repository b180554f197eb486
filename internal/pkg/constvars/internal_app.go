package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_LOCALE_KEY               ContextKey = "locale"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	NotificationDriverDirect = "direct"
	NotificationDriverQueue  = "queue"
)

const (
	DefaultLanguage         = "en"
	LanguageQueryParam      = "lang"
	ConfirmationAPIVersion  = "v1"
	ConfirmationRoutePath   = "/confirm"
	AdminRoutePrefix        = "/admin"
	MetricsRoutePath        = "/metrics"
	ExampleConfirmationMail = "user@example.com"
	ExampleConfirmationCode = "123456"
)
