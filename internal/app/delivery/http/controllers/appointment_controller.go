package controllers

import (
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("AppointmentController.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, caller.Email),
	)

	request := new(requests.CreateAppointment)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create appointment request", err)
		return
	}

	appointment, err := ctrl.AppointmentUsecase.BookAppointment(r.Context(), caller.Email, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to book appointment", err)
		return
	}

	ctrl.Log.Info("Appointment booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointment.ID),
		zap.String(constvars.LoggingScheduleIDKey, appointment.ScheduleID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	appointmentID := chi.URLParam(r, constvars.URLParamID)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("AppointmentController.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.String(constvars.LoggingRoleKey, caller.Role),
	)

	request := new(requests.UpdateAppointmentStatus)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid update appointment status request", err)
		return
	}

	appointment, err := ctrl.AppointmentUsecase.UpdateStatus(r.Context(), caller, appointmentID, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to update appointment status", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccessMessage, appointment)
}
