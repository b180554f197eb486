package routers

import (
	"double-optin-service/internal/app/delivery/http/controllers"
	"double-optin-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, settingsController *controllers.SettingsController) {
	router.Use(middlewares.RequireAdminAPIKey)
	router.Get("/settings", settingsController.Get)
	router.Put("/settings", settingsController.Update)
	router.Get("/pages", settingsController.ListPages)
}
