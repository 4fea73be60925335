package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindWithDoctorByID(ctx context.Context, appointmentID string) (*models.AppointmentWithDoctor, error)
	FindCompletedPaidWithDoctorByID(ctx context.Context, appointmentID string) (*models.AppointmentWithDoctor, error)
	// UpdateStatusFrom returns nil, nil when the current status is not from.
	UpdateStatusFrom(ctx context.Context, appointmentID, from, to string) (*models.Appointment, error)
	MarkPaid(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, patientEmail string, request *requests.CreateAppointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, caller *models.AuthUser, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
}
