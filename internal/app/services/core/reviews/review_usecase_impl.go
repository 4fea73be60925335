package reviews

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type reviewUsecase struct {
	ReviewRepository      contracts.ReviewRepository
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	Transactor            contracts.Transactor
	Log                   *zap.Logger
}

var (
	reviewUsecaseInstance contracts.ReviewUsecase
	onceReviewUsecase     sync.Once
)

func NewReviewUsecase(
	reviewRepository contracts.ReviewRepository,
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.ReviewUsecase {
	onceReviewUsecase.Do(func() {
		instance := &reviewUsecase{
			ReviewRepository:      reviewRepository,
			AppointmentRepository: appointmentRepository,
			PatientRepository:     patientRepository,
			DoctorRepository:      doctorRepository,
			Transactor:            transactor,
			Log:                   logger,
		}
		reviewUsecaseInstance = instance
	})
	return reviewUsecaseInstance
}

// CreateReview stores the patient's review and refreshes the doctor's
// average rating in the same transaction.
func (uc *reviewUsecase) CreateReview(ctx context.Context, patientEmail string, request *requests.CreateReview) (*models.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.CreateReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, patientEmail),
		zap.String(constvars.LoggingAppointmentKey, request.AppointmentID),
	)

	patient, err := uc.PatientRepository.FindByEmail(ctx, patientEmail)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientReviewTargetNotFound, "patient")
	}

	appointment, err := uc.AppointmentRepository.FindWithDoctorByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientReviewTargetNotFound, "appointment")
	}
	if appointment.PatientID != patient.ID {
		return nil, exceptions.ErrNotYourAppointment(nil)
	}

	var review *models.Review
	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		review, err = uc.ReviewRepository.Create(ctx, &models.Review{
			AppointmentID: appointment.ID,
			DoctorID:      appointment.DoctorID,
			PatientID:     patient.ID,
			Rating:        request.Rating,
			Comment:       request.Comment,
		})
		if err != nil {
			return err
		}

		averageRating, err := uc.DoctorRepository.RecalculateAverageRating(ctx, appointment.DoctorID)
		if err != nil {
			return err
		}
		uc.Log.Info("reviewUsecase.CreateReview recalculated average rating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
			zap.Float64("average_rating", averageRating),
		)
		return nil
	})
	if err != nil {
		uc.Log.Error("reviewUsecase.CreateReview error creating review",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return review, nil
}
