package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.With(middlewares.Authenticate(constvars.RoleDoctor)).Post("/", prescriptionController.CreatePrescription)
}
