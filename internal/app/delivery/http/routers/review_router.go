package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, middlewares *middlewares.Middlewares, reviewController *controllers.ReviewController) {
	router.With(middlewares.Authenticate(constvars.RolePatient)).Post("/", reviewController.CreateReview)
}
