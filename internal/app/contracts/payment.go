package contracts

import (
	"context"
	"doccare-service/internal/app/models"
)

type PaymentRepository interface {
	// CreateFromDoctorFee snapshots the doctor's current appointment fee.
	CreateFromDoctorFee(ctx context.Context, appointmentID, transactionID, doctorID string) (*models.Payment, error)
	// MarkPaidByAppointmentID returns nil, nil when no PENDING payment exists.
	MarkPaidByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error)
}

type PaymentUsecase interface {
	ConfirmPayment(ctx context.Context, appointmentID string) (*models.Payment, error)
}
