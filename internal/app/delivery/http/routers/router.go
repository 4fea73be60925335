package routers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/app/services/shared/metrics"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Controllers struct {
	Health         *controllers.HealthController
	Auth           *controllers.AuthController
	User           *controllers.UserController
	Patient        *controllers.PatientController
	Admin          *controllers.AdminController
	Doctor         *controllers.DoctorController
	Schedule       *controllers.ScheduleController
	DoctorSchedule *controllers.DoctorScheduleController
	Appointment    *controllers.AppointmentController
	Payment        *controllers.PaymentController
	Prescription   *controllers.PrescriptionController
	Review         *controllers.ReviewController
	Metadata       *controllers.MetadataController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	metricsCollector *metrics.Collector,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.ErrorHandler)
	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(logger))
	if metricsCollector != nil {
		router.Use(metricsCollector.HTTPMiddleware)
		router.Handle("/metrics", metricsCollector.Handler())
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(logger, w, exceptions.ErrRouteNotFound(nil))
	})

	loginLimiter := middlewares.NewRateLimiter(
		logger,
		internalConfig.App.LoginRateLimit,
		time.Minute,
		time.Duration(internalConfig.App.LoginBlockTimeInMinutes)*time.Minute,
	)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(mw.RequestTimeout)

			r.Get("/health", ctrls.Health.CheckHealth)

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, loginLimiter, ctrls.Auth)
			})

			r.Route("/user", func(r chi.Router) {
				attachUserRoutes(r, mw, ctrls.User)
			})

			r.Route("/patient", func(r chi.Router) {
				attachPatientRoutes(r, mw, ctrls.Patient)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, mw, ctrls.Admin)
			})

			r.Route("/doctor", func(r chi.Router) {
				attachDoctorRoutes(r, mw, ctrls.Doctor)
			})

			r.Route("/schedule", func(r chi.Router) {
				attachScheduleRoutes(r, mw, ctrls.Schedule)
			})

			r.Route("/doctor-schedule", func(r chi.Router) {
				attachDoctorScheduleRoutes(r, mw, ctrls.DoctorSchedule)
			})

			r.Route("/appointment", func(r chi.Router) {
				attachAppointmentRoutes(r, mw, ctrls.Appointment)
			})

			r.Route("/payment", func(r chi.Router) {
				attachPaymentRoutes(r, mw, ctrls.Payment)
			})

			r.Route("/prescription", func(r chi.Router) {
				attachPrescriptionRoutes(r, mw, ctrls.Prescription)
			})

			r.Route("/review", func(r chi.Router) {
				attachReviewRoutes(r, mw, ctrls.Review)
			})

			r.Route("/metadata", func(r chi.Router) {
				attachMetadataRoutes(r, mw, ctrls.Metadata)
			})
		})
	})
}
