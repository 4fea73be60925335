package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachMetadataRoutes(router chi.Router, middlewares *middlewares.Middlewares, metadataController *controllers.MetadataController) {
	router.With(middlewares.Authenticate(constvars.RoleAdmin, constvars.RoleDoctor, constvars.RolePatient)).Get("/", metadataController.GetDashboardMetadata)
}
