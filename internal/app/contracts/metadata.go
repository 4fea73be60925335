package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/responses"
)

type MetadataRepository interface {
	GetAdminMetadata(ctx context.Context) (*responses.AdminMetadata, error)
	GetDoctorMetadata(ctx context.Context, doctorID string) (*responses.DoctorMetadata, error)
	GetPatientMetadata(ctx context.Context, patientID string) (*responses.PatientMetadata, error)
}

type MetadataUsecase interface {
	GetDashboardMetadata(ctx context.Context, caller *models.AuthUser) (interface{}, error)
}
