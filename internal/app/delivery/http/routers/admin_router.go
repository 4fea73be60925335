package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.Use(middlewares.Authenticate(constvars.RoleAdmin))
	router.Get("/", adminController.FindAll)
	router.Get("/{id}", adminController.FindByID)
	router.Patch("/{id}", adminController.Update)
	router.Delete("/{id}", adminController.Delete)
}
