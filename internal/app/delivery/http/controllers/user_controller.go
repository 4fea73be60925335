package controllers

import (
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			Log:         logger,
			UserUsecase: userUsecase,
		}
	})
	return userControllerInstance
}

func (ctrl *UserController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("UserController.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreatePatient)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create patient request", err)
		return
	}

	patient, err := ctrl.UserUsecase.CreatePatient(r.Context(), request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to create patient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, patient)
}

func (ctrl *UserController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("UserController.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateDoctor)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create doctor request", err)
		return
	}

	doctor, err := ctrl.UserUsecase.CreateDoctor(r.Context(), request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to create doctor", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, doctor)
}

func (ctrl *UserController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("UserController.CreateAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAdmin)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create admin request", err)
		return
	}

	admin, err := ctrl.UserUsecase.CreateAdmin(r.Context(), request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to create admin", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAdminSuccessMessage, admin)
}
