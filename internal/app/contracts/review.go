package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
}

type ReviewUsecase interface {
	CreateReview(ctx context.Context, patientEmail string, request *requests.CreateReview) (*models.Review, error)
}
