package middlewares

import (
	"context"
	"crypto/subtle"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/exceptions"
	"double-optin-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireAdminAPIKey guards the admin routes. With no key configured the admin API is closed.
func (m *Middlewares) RequireAdminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := m.InternalConfig.App.AdminAPIKey
		if expected == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyNotConfigured(nil))
			return
		}

		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("API Key authentication successful",
			zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
