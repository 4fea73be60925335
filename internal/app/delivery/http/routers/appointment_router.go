package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate(constvars.RolePatient)).Post("/", appointmentController.BookAppointment)
	router.With(middlewares.Authenticate(constvars.RoleDoctor, constvars.RoleAdmin)).Patch("/{id}/status", appointmentController.UpdateStatus)
}
