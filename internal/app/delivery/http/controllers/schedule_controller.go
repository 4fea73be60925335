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

var scheduleSortableFields = []string{"id", "startDateTime", "endDateTime", "createdAt", "updatedAt"}

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

var (
	scheduleControllerInstance *ScheduleController
	onceScheduleController     sync.Once
)

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	onceScheduleController.Do(func() {
		scheduleControllerInstance = &ScheduleController{
			Log:             logger,
			ScheduleUsecase: scheduleUsecase,
		}
	})
	return scheduleControllerInstance
}

func (ctrl *ScheduleController) CreateSchedules(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("ScheduleController.CreateSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateSchedule)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create schedule request", err)
		return
	}

	schedules, err := ctrl.ScheduleUsecase.CreateSchedules(r.Context(), request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to create schedules", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSchedulesSuccessMessage, schedules)
}

// ListForDoctor lists the slots the calling doctor has not been assigned yet.
func (ctrl *ScheduleController) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.ListForDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, caller.Email),
	)

	query := r.URL.Query()
	filters := &requests.ScheduleFilters{
		StartDateTime: query.Get(constvars.URLQueryParamStartDateTime),
		EndDateTime:   query.Get(constvars.URLQueryParamEndDateTime),
	}
	if err := utils.ValidateStruct(filters); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid schedule filters", exceptions.ErrInputValidation(err))
		return
	}
	pagination := utils.BuildPaginationRequest(r, scheduleSortableFields, "startDateTime", constvars.SortOrderAsc)

	schedules, meta, err := ctrl.ScheduleUsecase.ListForDoctor(r.Context(), caller.Email, filters, pagination)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch schedules", err)
		return
	}

	utils.BuildSuccessResponseWithMeta(w, constvars.StatusOK, constvars.GetSchedulesSuccessMessage, meta, schedules)
}

func (ctrl *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	scheduleID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("ScheduleController.DeleteSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := ctrl.ScheduleUsecase.DeleteSchedule(r.Context(), scheduleID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to delete schedule", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteScheduleSuccessMessage, schedule)
}
