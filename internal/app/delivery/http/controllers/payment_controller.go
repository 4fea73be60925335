package controllers

import (
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
		}
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("PaymentController.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)

	payment, err := ctrl.PaymentUsecase.ConfirmPayment(r.Context(), appointmentID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to confirm payment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConfirmPaymentSuccessMessage, payment)
}
