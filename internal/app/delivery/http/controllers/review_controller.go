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

type ReviewController struct {
	Log           *zap.Logger
	ReviewUsecase contracts.ReviewUsecase
}

var (
	reviewControllerInstance *ReviewController
	onceReviewController     sync.Once
)

func NewReviewController(logger *zap.Logger, reviewUsecase contracts.ReviewUsecase) *ReviewController {
	onceReviewController.Do(func() {
		reviewControllerInstance = &ReviewController{
			Log:           logger,
			ReviewUsecase: reviewUsecase,
		}
	})
	return reviewControllerInstance
}

func (ctrl *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	caller := middlewares.AuthUserFromContext(r.Context())
	if caller == nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Auth user missing from context", exceptions.ErrNotAuthorized(nil))
		return
	}
	ctrl.Log.Info("ReviewController.CreateReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, caller.Email),
	)

	request := new(requests.CreateReview)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid create review request", err)
		return
	}

	review, err := ctrl.ReviewUsecase.CreateReview(r.Context(), caller.Email, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to create review", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReviewSuccessMessage, review)
}
