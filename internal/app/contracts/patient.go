package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindAll(ctx context.Context, filters *requests.PatientFilters, pagination requests.Pagination) ([]models.Patient, int, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	SoftDelete(ctx context.Context, patientID string) (*models.Patient, error)
}

type PatientUsecase interface {
	FindAll(ctx context.Context, filters *requests.PatientFilters, pagination requests.Pagination) ([]models.Patient, *responses.Meta, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) (*models.Patient, error)
}
