package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorScheduleController *controllers.DoctorScheduleController) {
	router.With(middlewares.Authenticate(constvars.RoleDoctor)).Post("/", doctorScheduleController.AssignSchedules)
}
