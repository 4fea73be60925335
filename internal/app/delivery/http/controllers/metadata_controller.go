package controllers

import (
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/delivery/http/middlewares"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type MetadataController struct {
	Log             *zap.Logger
	MetadataUsecase contracts.MetadataUsecase
}

var (
	metadataControllerInstance *MetadataController
	onceMetadataController     sync.Once
)

func NewMetadataController(logger *zap.Logger, metadataUsecase contracts.MetadataUsecase) *MetadataController {
	onceMetadataController.Do(func() {
		metadataControllerInstance = &MetadataController{
			Log:             logger,
			MetadataUsecase: metadataUsecase,
		}
	})
	return metadataControllerInstance
}

func (ctrl *MetadataController) GetDashboardMetadata(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("MetadataController.GetDashboardMetadata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, caller.Role),
	)

	metadata, err := ctrl.MetadataUsecase.GetDashboardMetadata(r.Context(), caller)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to fetch dashboard metadata", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMetadataSuccessMessage, metadata)
}
