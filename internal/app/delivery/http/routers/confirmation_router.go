package routers

import (
	"double-optin-service/internal/app/delivery/http/controllers"
	"double-optin-service/internal/app/delivery/http/middlewares"
	"double-optin-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachConfirmationRoutes(router chi.Router, middlewares *middlewares.Middlewares, confirmationController *controllers.ConfirmationController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Language)
		r.Get(constvars.ConfirmationRoutePath, confirmationController.Confirm)
		r.Get(constvars.ConfirmationRoutePath+"/", confirmationController.Confirm)
	})
}
