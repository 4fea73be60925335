package main

import (
	"context"
	"doccare-service/cmd/migration"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/delivery/http/controllers"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/app/delivery/http/routers"
	"doccare-service/internal/app/drivers/database"
	"doccare-service/internal/app/drivers/logger"
	"doccare-service/internal/app/drivers/messaging"
	"doccare-service/internal/app/services/core/admins"
	"doccare-service/internal/app/services/core/appointments"
	"doccare-service/internal/app/services/core/auth"
	"doccare-service/internal/app/services/core/doctor_schedules"
	"doccare-service/internal/app/services/core/doctors"
	"doccare-service/internal/app/services/core/metadata"
	"doccare-service/internal/app/services/core/patients"
	"doccare-service/internal/app/services/core/payments"
	"doccare-service/internal/app/services/core/prescriptions"
	"doccare-service/internal/app/services/core/reviews"
	"doccare-service/internal/app/services/core/schedules"
	"doccare-service/internal/app/services/core/users"
	"doccare-service/internal/app/services/shared/locker"
	"doccare-service/internal/app/services/shared/metrics"
	"doccare-service/internal/app/services/shared/publisher"
	"doccare-service/internal/app/services/shared/redis"
	"doccare-service/internal/app/services/shared/transaction"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const serviceName = "doccare-service"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	if err := internalConfig.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	location, err := time.LoadLocation(internalConfig.App.ScheduleTimezone)
	if err != nil {
		log.Fatal("Error loading schedule timezone", zap.String("timezone", internalConfig.App.ScheduleTimezone), zap.Error(err))
	}

	postgresDB := database.NewPostgresDB(driverConfig)
	if internalConfig.App.RunMigration {
		migration.Run(postgresDB, internalConfig.App.MigrationDir)
	}
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	log := bootstrap.Logger
	db := bootstrap.PostgresDB

	// Shared
	metricsCollector := metrics.NewCollector(serviceName)
	transactor := transaction.NewPostgresTransactor(db, log, time.Duration(bootstrap.InternalConfig.App.TransactionTimeoutInSeconds)*time.Second)
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	appointmentPublisher, err := publisher.NewAppointmentPublisher(bootstrap.RabbitMQ, log, bootstrap.InternalConfig.RabbitMQ.AppointmentQueue)
	if err != nil {
		log.Warn("Appointment events disabled", zap.Error(err))
		appointmentPublisher = nil
	}

	// Repositories
	userRepository := users.NewUserPostgresRepository(db, log)
	patientRepository := patients.NewPatientPostgresRepository(db, log)
	doctorRepository := doctors.NewDoctorPostgresRepository(db, log)
	adminRepository := admins.NewAdminPostgresRepository(db, log)
	scheduleRepository := schedules.NewSchedulePostgresRepository(db, log)
	doctorScheduleRepository := doctor_schedules.NewDoctorSchedulePostgresRepository(db, log)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(db, log)
	paymentRepository := payments.NewPaymentPostgresRepository(db, log)
	prescriptionRepository := prescriptions.NewPrescriptionPostgresRepository(db, log)
	reviewRepository := reviews.NewReviewPostgresRepository(db, log)
	metadataRepository := metadata.NewMetadataPostgresRepository(db, log)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, bootstrap.InternalConfig, log)
	userUsecase := users.NewUserUsecase(userRepository, patientRepository, doctorRepository, adminRepository, transactor, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, userRepository, transactor, log)
	adminUsecase := admins.NewAdminUsecase(adminRepository, userRepository, transactor, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, doctorScheduleRepository, userRepository, transactor, log)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleRepository, doctorRepository, transactor, metricsCollector, location, log)
	doctorScheduleUsecase := doctor_schedules.NewDoctorScheduleUsecase(doctorScheduleRepository, doctorRepository, transactor, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		paymentRepository,
		patientRepository,
		doctorRepository,
		doctorScheduleRepository,
		transactor,
		appointmentPublisher,
		metricsCollector,
		log,
	)
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, appointmentRepository, transactor, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, appointmentRepository, patientRepository, log)
	reviewUsecase := reviews.NewReviewUsecase(reviewRepository, appointmentRepository, patientRepository, doctorRepository, transactor, log)
	metadataUsecase := metadata.NewMetadataUsecase(metadataRepository, doctorRepository, patientRepository, log)

	// Slot worker
	if bootstrap.InternalConfig.App.SlotWorkerEnabled {
		worker := schedules.NewWorker(log, bootstrap.InternalConfig, lockerService, scheduleUsecase, location)
		worker.Start(context.Background())
		bootstrap.SlotWorkerStop = worker.Stop
	}

	// Delivery
	middlewareInstance := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, log, bootstrap.InternalConfig, middlewareInstance, metricsCollector, routers.Controllers{
		Health:         controllers.NewHealthController(log, bootstrap.InternalConfig),
		Auth:           controllers.NewAuthController(log, authUsecase, bootstrap.InternalConfig),
		User:           controllers.NewUserController(log, userUsecase),
		Patient:        controllers.NewPatientController(log, patientUsecase),
		Admin:          controllers.NewAdminController(log, adminUsecase),
		Doctor:         controllers.NewDoctorController(log, doctorUsecase),
		Schedule:       controllers.NewScheduleController(log, scheduleUsecase),
		DoctorSchedule: controllers.NewDoctorScheduleController(log, doctorScheduleUsecase),
		Appointment:    controllers.NewAppointmentController(log, appointmentUsecase),
		Payment:        controllers.NewPaymentController(log, paymentUsecase),
		Prescription:   controllers.NewPrescriptionController(log, prescriptionUsecase),
		Review:         controllers.NewReviewController(log, reviewUsecase),
		Metadata:       controllers.NewMetadataController(log, metadataUsecase),
	})
}
