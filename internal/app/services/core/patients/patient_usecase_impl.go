package patients

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	UserRepository    contracts.UserRepository
	Transactor        contracts.Transactor
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		instance := &patientUsecase{
			PatientRepository: patientRepository,
			UserRepository:    userRepository,
			Transactor:        transactor,
			Log:               logger,
		}
		patientUsecaseInstance = instance
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) FindAll(ctx context.Context, filters *requests.PatientFilters, pagination requests.Pagination) ([]models.Patient, *responses.Meta, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, total, err := uc.PatientRepository.FindAll(ctx, filters, pagination)
	if err != nil {
		return nil, nil, err
	}
	return patients, &responses.Meta{Page: pagination.Page, Limit: pagination.Limit, Total: total}, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientPatientNotFound, "patient")
	}
	return patient, nil
}

func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.Update(ctx, patientID, request)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientPatientNotFound, "patient")
	}
	return patient, nil
}

// Delete soft deletes the profile and disables its login account together.
func (uc *patientUsecase) Delete(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var patient *models.Patient
	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		patient, err = uc.PatientRepository.SoftDelete(ctx, patientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return exceptions.ErrResourceNotFound(nil, constvars.ErrClientPatientNotFound, "patient")
		}
		return uc.UserRepository.UpdateStatusByEmail(ctx, patient.Email, constvars.UserStatusDeleted)
	})
	if err != nil {
		uc.Log.Error("patientUsecase.Delete error deleting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return patient, nil
}
