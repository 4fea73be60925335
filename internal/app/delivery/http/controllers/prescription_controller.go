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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		prescriptionControllerInstance = &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("PrescriptionController.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, caller.Email),
	)

	request := new(requests.CreatePrescription)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create prescription request", err)
		return
	}

	prescription, err := ctrl.PrescriptionUsecase.CreatePrescription(r.Context(), caller.Email, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to create prescription", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePrescriptionSuccessMessage, prescription)
}
