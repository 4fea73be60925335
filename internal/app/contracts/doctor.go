package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	SoftDelete(ctx context.Context, doctorID string) (*models.Doctor, error)
	RecalculateAverageRating(ctx context.Context, doctorID string) (float64, error)
}

type DoctorUsecase interface {
	FindByID(ctx context.Context, doctorID string) (*responses.DoctorDetail, error)
	Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID string) (*models.Doctor, error)
}
