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

	"go.uber.org/zap"
)

type DoctorScheduleController struct {
	Log                   *zap.Logger
	DoctorScheduleUsecase contracts.DoctorScheduleUsecase
}

var (
	doctorScheduleControllerInstance *DoctorScheduleController
	onceDoctorScheduleController     sync.Once
)

func NewDoctorScheduleController(logger *zap.Logger, doctorScheduleUsecase contracts.DoctorScheduleUsecase) *DoctorScheduleController {
	onceDoctorScheduleController.Do(func() {
		doctorScheduleControllerInstance = &DoctorScheduleController{
			Log:                   logger,
			DoctorScheduleUsecase: doctorScheduleUsecase,
		}
	})
	return doctorScheduleControllerInstance
}

func (ctrl *DoctorScheduleController) AssignSchedules(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("DoctorScheduleController.AssignSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, caller.Email),
	)

	request := new(requests.AssignDoctorSchedules)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid assign schedules request", err)
		return
	}

	result, err := ctrl.DoctorScheduleUsecase.AssignSchedules(r.Context(), caller.Email, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to assign schedules", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssignDoctorSchedulesSuccessMessage, result)
}
