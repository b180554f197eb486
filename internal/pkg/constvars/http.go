package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

const (
	HeaderAccept         = "Accept"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "Content-Type"
	HeaderXRequestID     = "X-Request-Id"
	HeaderAPIKey         = "x-api-key"
	HeaderUserAgent      = "User-Agent"
)

const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
	MIMETextPlain                  = "text/plain"
)

const (
	StatusOK                   = 200
	StatusAccepted             = 202
	StatusFound                = 302
	StatusBadRequest           = 400
	StatusUnauthorized         = 401
	StatusForbidden            = 403
	StatusNotFound             = 404
	StatusMethodNotAllowed     = 405
	StatusTooManyRequests      = 429
	StatusInternalServerError  = 500
	StatusServiceUnavailable   = 503
	StatusGatewayTimeout       = 504
	StatusUnsupportedMediaType = 415
)
