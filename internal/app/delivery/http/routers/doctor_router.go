package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.Authenticate(constvars.RoleAdmin))
	router.Get("/{id}", doctorController.FindByID)
	router.Patch("/{id}", doctorController.Update)
	router.Delete("/{id}", doctorController.Delete)
}
