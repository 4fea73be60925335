package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
)

type UserRepository interface {
	CreateUser(ctx context.Context, account *requests.NewAccount) (*models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateStatusByEmail(ctx context.Context, email, status string) error
}

type UserUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error)
}
