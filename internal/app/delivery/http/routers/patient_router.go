package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate(constvars.RoleAdmin))
	router.Get("/", patientController.FindAll)
	router.Get("/{id}", patientController.FindByID)
	router.Patch("/{id}", patientController.Update)
	router.Delete("/{id}", patientController.Delete)
}
