package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	FindByID(ctx context.Context, adminID string) (*models.Admin, error)
	FindAll(ctx context.Context, filters *requests.AdminFilters, pagination requests.Pagination) ([]models.Admin, int, error)
	Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error)
	SoftDelete(ctx context.Context, adminID string) (*models.Admin, error)
}

type AdminUsecase interface {
	FindAll(ctx context.Context, filters *requests.AdminFilters, pagination requests.Pagination) ([]models.Admin, *responses.Meta, error)
	FindByID(ctx context.Context, adminID string) (*models.Admin, error)
	Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error)
	Delete(ctx context.Context, adminID string) (*models.Admin, error)
}
