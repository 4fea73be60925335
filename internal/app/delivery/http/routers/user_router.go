package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/create-patient", userController.CreatePatient)
	router.With(middlewares.Authenticate(constvars.RoleAdmin)).Post("/create-doctor", userController.CreateDoctor)
	router.With(middlewares.APIKeyAuth, middlewares.AuthenticateOrAPIKey(constvars.RoleAdmin)).Post("/create-admin", userController.CreateAdmin)
}
