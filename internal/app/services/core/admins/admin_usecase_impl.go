package admins

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

type adminUsecase struct {
	AdminRepository contracts.AdminRepository
	UserRepository  contracts.UserRepository
	Transactor      contracts.Transactor
	Log             *zap.Logger
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	adminRepository contracts.AdminRepository,
	userRepository contracts.UserRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		instance := &adminUsecase{
			AdminRepository: adminRepository,
			UserRepository:  userRepository,
			Transactor:      transactor,
			Log:             logger,
		}
		adminUsecaseInstance = instance
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) FindAll(ctx context.Context, filters *requests.AdminFilters, pagination requests.Pagination) ([]models.Admin, *responses.Meta, error) {
	admins, total, err := uc.AdminRepository.FindAll(ctx, filters, pagination)
	if err != nil {
		return nil, nil, err
	}
	return admins, &responses.Meta{Page: pagination.Page, Limit: pagination.Limit, Total: total}, nil
}

func (uc *adminUsecase) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	admin, err := uc.AdminRepository.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientAdminNotFound, "admin")
	}
	return admin, nil
}

func (uc *adminUsecase) Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, adminID),
	)

	admin, err := uc.AdminRepository.Update(ctx, adminID, request)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientAdminNotFound, "admin")
	}
	return admin, nil
}

func (uc *adminUsecase) Delete(ctx context.Context, adminID string) (*models.Admin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("adminUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, adminID),
	)

	var admin *models.Admin
	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		admin, err = uc.AdminRepository.SoftDelete(ctx, adminID)
		if err != nil {
			return err
		}
		if admin == nil {
			return exceptions.ErrResourceNotFound(nil, constvars.ErrClientAdminNotFound, "admin")
		}
		return uc.UserRepository.UpdateStatusByEmail(ctx, admin.Email, constvars.UserStatusDeleted)
	})
	if err != nil {
		uc.Log.Error("adminUsecase.Delete error deleting admin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return admin, nil
}
