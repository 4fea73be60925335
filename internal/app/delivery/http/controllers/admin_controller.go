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

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

var (
	adminControllerInstance *AdminController
	onceAdminController     sync.Once
)

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	onceAdminController.Do(func() {
		adminControllerInstance = &AdminController{
			Log:          logger,
			AdminUsecase: adminUsecase,
		}
	})
	return adminControllerInstance
}

func (ctrl *AdminController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AdminController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := r.URL.Query()
	filters := &requests.AdminFilters{
		SearchTerm:    query.Get(constvars.URLQueryParamSearchTerm),
		Email:         query.Get(constvars.URLQueryParamEmail),
		ContactNumber: query.Get(constvars.URLQueryParamContactNumber),
	}
	pagination := utils.BuildPaginationRequest(r, profileSortableFields, "createdAt", constvars.SortOrderDesc)

	admins, meta, err := ctrl.AdminUsecase.FindAll(r.Context(), filters, pagination)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch admins", err)
		return
	}

	utils.BuildSuccessResponseWithMeta(w, constvars.StatusOK, constvars.GetAdminsSuccessMessage, meta, admins)
}

func (ctrl *AdminController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	adminID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("AdminController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, adminID),
	)

	admin, err := ctrl.AdminUsecase.FindByID(r.Context(), adminID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch admin", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdminSuccessMessage, admin)
}

func (ctrl *AdminController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	adminID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("AdminController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, adminID),
	)

	request := new(requests.UpdateAdmin)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid update admin request", err)
		return
	}

	admin, err := ctrl.AdminUsecase.Update(r.Context(), adminID, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to update admin", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAdminSuccessMessage, admin)
}

func (ctrl *AdminController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	adminID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("AdminController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, adminID),
	)

	admin, err := ctrl.AdminUsecase.Delete(r.Context(), adminID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to delete admin", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAdminSuccessMessage, admin)
}
