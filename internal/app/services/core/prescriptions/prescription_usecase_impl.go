package prescriptions

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	PatientRepository      contracts.PatientRepository
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		instance := &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			PatientRepository:      patientRepository,
			Log:                    logger,
		}
		prescriptionUsecaseInstance = instance
	})
	return prescriptionUsecaseInstance
}

// CreatePrescription is only allowed for the doctor of a COMPLETED and PAID
// appointment.
func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, doctorEmail string, request *requests.CreatePrescription) (*responses.PrescriptionDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, doctorEmail),
		zap.String(constvars.LoggingAppointmentKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindCompletedPaidWithDoctorByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientAppointmentNotCompletedPaid, "appointment")
	}
	if appointment.DoctorEmail != doctorEmail {
		return nil, exceptions.ErrNotYourAppointment(nil)
	}

	prescription := &models.Prescription{
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Instructions:  request.Instructions,
	}
	if request.FollowUpDate != nil && *request.FollowUpDate != "" {
		followUpDate, err := utils.ParseDateTime(*request.FollowUpDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		prescription.FollowUpDate = &followUpDate
	}

	created, err := uc.PrescriptionRepository.Create(ctx, prescription)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, created.PatientID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, created.ID),
	)
	return &responses.PrescriptionDetail{Prescription: *created, Patient: patient}, nil
}
