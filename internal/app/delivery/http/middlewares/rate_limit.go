package middlewares

import (
	"double-optin-service/internal/pkg/exceptions"
	"double-optin-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits requests per client IP to App.MaxRequests per second. A non-positive limit
// disables it.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	if m.InternalConfig.App.MaxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
