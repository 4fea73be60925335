package controllers

import (
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			Log:           logger,
			DoctorUsecase: doctorUsecase,
		}
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	doctorID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("DoctorController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := ctrl.DoctorUsecase.FindByID(r.Context(), doctorID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch doctor", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, doctor)
}

func (ctrl *DoctorController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	doctorID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("DoctorController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.UpdateDoctor)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid update doctor request", err)
		return
	}

	doctor, err := ctrl.DoctorUsecase.Update(r.Context(), doctorID, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to update doctor", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorSuccessMessage, doctor)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	doctorID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("DoctorController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := ctrl.DoctorUsecase.Delete(r.Context(), doctorID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to delete doctor", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDoctorSuccessMessage, doctor)
}
