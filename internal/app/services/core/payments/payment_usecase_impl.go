package payments

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	AppointmentRepository contracts.AppointmentRepository
	Transactor            contracts.Transactor
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			PaymentRepository:     paymentRepository,
			AppointmentRepository: appointmentRepository,
			Transactor:            transactor,
			Log:                   logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, appointmentID string) (*models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)

	var payment *models.Payment
	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		payment, err = uc.PaymentRepository.MarkPaidByAppointmentID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if payment == nil {
			appointment, err := uc.AppointmentRepository.FindWithDoctorByID(ctx, appointmentID)
			if err != nil {
				return err
			}
			if appointment == nil {
				return exceptions.ErrResourceNotFound(nil, constvars.ErrClientAppointmentNotFound, "appointment")
			}
			return exceptions.ErrPaymentAlreadyPaid(nil)
		}

		appointment, err := uc.AppointmentRepository.MarkPaid(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrResourceNotFound(nil, constvars.ErrClientAppointmentNotFound, "appointment")
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error confirming payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, payment.ID),
	)
	return payment, nil
}
