package appointments

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/metrics"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository    contracts.AppointmentRepository
	PaymentRepository        contracts.PaymentRepository
	PatientRepository        contracts.PatientRepository
	DoctorRepository         contracts.DoctorRepository
	DoctorScheduleRepository contracts.DoctorScheduleRepository
	Transactor               contracts.Transactor
	Publisher                contracts.AppointmentEventPublisher
	Metrics                  contracts.DomainMetrics
	Log                      *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	paymentRepository contracts.PaymentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	doctorScheduleRepository contracts.DoctorScheduleRepository,
	transactor contracts.Transactor,
	publisher contracts.AppointmentEventPublisher,
	domainMetrics contracts.DomainMetrics,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository:    appointmentRepository,
			PaymentRepository:        paymentRepository,
			PatientRepository:        patientRepository,
			DoctorRepository:         doctorRepository,
			DoctorScheduleRepository: doctorScheduleRepository,
			Transactor:               transactor,
			Publisher:                publisher,
			Metrics:                  domainMetrics,
			Log:                      logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

// BookAppointment flips the doctor's slot to booked and records the
// appointment with its pending payment atomically. Losing the race on the
// slot yields a conflict.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, patientEmail string, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, patientEmail),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
	)

	appointment, payment, err := uc.book(ctx, patientEmail, request)
	uc.observeBooking(err)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error booking appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointment.ID),
	)

	uc.publishBooked(ctx, appointment, payment)
	return appointment, nil
}

func (uc *appointmentUsecase) book(ctx context.Context, patientEmail string, request *requests.CreateAppointment) (*models.Appointment, *models.Payment, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, patientEmail)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientBookingTargetNotFound, "patient")
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientBookingTargetNotFound, "doctor")
	}

	doctorSchedule, err := uc.DoctorScheduleRepository.FindUnbooked(ctx, doctor.ID, request.ScheduleID)
	if err != nil {
		return nil, nil, err
	}
	if doctorSchedule == nil {
		return nil, nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientBookingTargetNotFound, "doctor schedule")
	}

	videoCallingID := uuid.NewString()
	transactionID := uuid.NewString()

	var (
		appointment *models.Appointment
		payment     *models.Payment
	)
	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		booked, err := uc.DoctorScheduleRepository.MarkBooked(ctx, doctor.ID, request.ScheduleID)
		if err != nil {
			return err
		}
		if !booked {
			return exceptions.ErrScheduleAlreadyBooked(nil)
		}

		appointment, err = uc.AppointmentRepository.Create(ctx, &models.Appointment{
			PatientID:      patient.ID,
			DoctorID:       doctor.ID,
			ScheduleID:     request.ScheduleID,
			VideoCallingID: videoCallingID,
		})
		if err != nil {
			return err
		}

		payment, err = uc.PaymentRepository.CreateFromDoctorFee(ctx, appointment.ID, transactionID, doctor.ID)
		if err != nil {
			return err
		}
		if payment == nil {
			return exceptions.ErrResourceNotFound(nil, constvars.ErrClientBookingTargetNotFound, "doctor")
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return appointment, payment, nil
}

func (uc *appointmentUsecase) observeBooking(err error) {
	if uc.Metrics == nil {
		return
	}

	result := metrics.BookingResultBooked
	if err != nil {
		result = metrics.BookingResultError
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			switch customErr.StatusCode {
			case constvars.StatusConflict:
				result = metrics.BookingResultConflict
			case constvars.StatusNotFound:
				result = metrics.BookingResultNotFound
			}
		}
	}
	uc.Metrics.ObserveBooking(result)
}

func (uc *appointmentUsecase) publishBooked(ctx context.Context, appointment *models.Appointment, payment *models.Payment) {
	if uc.Publisher == nil {
		return
	}

	event := &models.AppointmentBookedEvent{
		Event:          constvars.EventAppointmentBooked,
		AppointmentID:  appointment.ID,
		PatientID:      appointment.PatientID,
		DoctorID:       appointment.DoctorID,
		ScheduleID:     appointment.ScheduleID,
		VideoCallingID: appointment.VideoCallingID,
		PaymentID:      payment.ID,
		TransactionID:  payment.TransactionID,
		Amount:         payment.Amount,
		OccurredAt:     time.Now().UTC(),
	}
	if err := uc.Publisher.PublishAppointmentBooked(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase.BookAppointment error publishing booked event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentKey, appointment.ID),
			zap.Error(err),
		)
	}
}

// UpdateStatus moves a PENDING appointment to COMPLETED or CANCELLED.
// Doctors may only touch their own appointments.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, caller *models.AuthUser, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.String(constvars.LoggingRoleKey, caller.Role),
		zap.String("status", request.Status),
	)

	existing, err := uc.AppointmentRepository.FindWithDoctorByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientAppointmentNotFound, "appointment")
	}

	if caller.Role == constvars.RoleDoctor && existing.DoctorEmail != caller.Email {
		return nil, exceptions.ErrNotYourAppointment(nil)
	}

	if existing.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrInvalidStatusTransition(nil, existing.Status, request.Status)
	}

	updated, err := uc.AppointmentRepository.UpdateStatusFrom(ctx, appointmentID, constvars.AppointmentStatusPending, request.Status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrInvalidStatusTransition(nil, existing.Status, request.Status)
	}

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)
	return updated, nil
}
