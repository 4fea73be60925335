package routers

import (
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.Authenticate(constvars.RoleAdmin)).Post("/{appointmentId}/confirm", paymentController.ConfirmPayment)
}
