package routers

import (
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/delivery/http/controllers"
	"double-optin-service/internal/app/delivery/http/middlewares"
	"double-optin-service/internal/pkg/constvars"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// HTTPMetrics instruments requests and serves the collected metrics.
type HTTPMetrics interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	metrics HTTPMetrics,
	confirmationController *controllers.ConfirmationController,
	settingsController *controllers.SettingsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderAPIKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	if metrics != nil {
		router.Use(metrics.Middleware)
		router.Method(http.MethodGet, constvars.MetricsRoutePath, metrics.Handler())
	}

	versionPrefix := fmt.Sprintf("/%s", constvars.ConfirmationAPIVersion)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimit())

		// The prefix is matched against the stored settings on every request.
		r.Route("/{prefix}"+versionPrefix, func(r chi.Router) {
			attachConfirmationRoutes(r, middlewares, confirmationController)
		})

		r.Route(constvars.AdminRoutePrefix+versionPrefix, func(r chi.Router) {
			attachAdminRoutes(r, middlewares, settingsController)
		})
	})
}
