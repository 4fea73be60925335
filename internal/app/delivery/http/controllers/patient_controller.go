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

var profileSortableFields = []string{"createdAt", "updatedAt", "name", "email"}

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		patientControllerInstance = &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
	})
	return patientControllerInstance
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("PatientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := r.URL.Query()
	filters := &requests.PatientFilters{
		SearchTerm: query.Get(constvars.URLQueryParamSearchTerm),
		Email:      query.Get(constvars.URLQueryParamEmail),
	}
	pagination := utils.BuildPaginationRequest(r, profileSortableFields, "createdAt", constvars.SortOrderDesc)

	patients, meta, err := ctrl.PatientUsecase.FindAll(r.Context(), filters, pagination)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch patients", err)
		return
	}

	utils.BuildSuccessResponseWithMeta(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, meta, patients)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	patientID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("PatientController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := ctrl.PatientUsecase.FindByID(r.Context(), patientID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch patient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, patient)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	patientID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("PatientController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	request := new(requests.UpdatePatient)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid update patient request", err)
		return
	}

	patient, err := ctrl.PatientUsecase.Update(r.Context(), patientID, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to update patient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, patient)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	patientID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("PatientController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := ctrl.PatientUsecase.Delete(r.Context(), patientID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to delete patient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, patient)
}
