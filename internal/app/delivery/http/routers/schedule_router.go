package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Slot creation and deletion stay open for bootstrap tooling.
func attachScheduleRoutes(router chi.Router, middlewares *middlewares.Middlewares, scheduleController *controllers.ScheduleController) {
	router.Post("/", scheduleController.CreateSchedules)
	router.With(middlewares.Authenticate(constvars.RoleDoctor)).Get("/", scheduleController.ListForDoctor)
	router.Delete("/{id}", scheduleController.DeleteSchedule)
}
