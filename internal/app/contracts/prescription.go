package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
}

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, doctorEmail string, request *requests.CreatePrescription) (*responses.PrescriptionDetail, error)
}
