package metadata

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type metadataUsecase struct {
	MetadataRepository contracts.MetadataRepository
	DoctorRepository   contracts.DoctorRepository
	PatientRepository  contracts.PatientRepository
	Log                *zap.Logger
}

var (
	metadataUsecaseInstance contracts.MetadataUsecase
	onceMetadataUsecase     sync.Once
)

func NewMetadataUsecase(
	metadataRepository contracts.MetadataRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.MetadataUsecase {
	onceMetadataUsecase.Do(func() {
		instance := &metadataUsecase{
			MetadataRepository: metadataRepository,
			DoctorRepository:   doctorRepository,
			PatientRepository:  patientRepository,
			Log:                logger,
		}
		metadataUsecaseInstance = instance
	})
	return metadataUsecaseInstance
}

// GetDashboardMetadata returns a different shape per role.
func (uc *metadataUsecase) GetDashboardMetadata(ctx context.Context, caller *models.AuthUser) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("metadataUsecase.GetDashboardMetadata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, caller.Role),
	)

	switch caller.Role {
	case constvars.RoleAdmin:
		return uc.MetadataRepository.GetAdminMetadata(ctx)
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByEmail(ctx, caller.Email)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientDoctorNotFound, "doctor")
		}
		return uc.MetadataRepository.GetDoctorMetadata(ctx, doctor.ID)
	case constvars.RolePatient:
		patient, err := uc.PatientRepository.FindByEmail(ctx, caller.Email)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientPatientNotFound, "patient")
		}
		return uc.MetadataRepository.GetPatientMetadata(ctx, patient.ID)
	default:
		return nil, exceptions.ErrInvalidRole(nil, caller.Role)
	}
}
