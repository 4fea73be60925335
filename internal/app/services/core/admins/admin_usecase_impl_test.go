package admins

import (
	"context"
	"net/http"
	"testing"

	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminUsecase_Update(t *testing.T) {
	ctx := context.Background()
	adminRepo := new(mocks.AdminRepository)
	uc := &adminUsecase{AdminRepository: adminRepo, Log: zap.NewNop()}
	name := "Root"
	request := &requests.UpdateAdmin{Name: &name}

	adminRepo.On("Update", ctx, "ad-1", request).Return(&models.Admin{ID: "ad-1", Name: "Root"}, nil)
	adminRepo.On("Update", ctx, "ad-404", request).Return(nil, nil)

	admin, err := uc.Update(ctx, "ad-1", request)
	require.NoError(t, err)
	assert.Equal(t, "Root", admin.Name)

	_, err = uc.Update(ctx, "ad-404", request)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientAdminNotFound, customErr.ClientMessage)
}

func TestAdminUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	adminRepo := new(mocks.AdminRepository)
	userRepo := new(mocks.UserRepository)
	transactor := new(mocks.Transactor)
	uc := &adminUsecase{AdminRepository: adminRepo, UserRepository: userRepo, Transactor: transactor, Log: zap.NewNop()}

	transactor.On("WithinTransaction", ctx).Return(nil)
	adminRepo.On("SoftDelete", ctx, "ad-1").Return(&models.Admin{ID: "ad-1", Email: "root@x.io", IsDeleted: true}, nil)
	userRepo.On("UpdateStatusByEmail", ctx, "root@x.io", constvars.UserStatusDeleted).Return(nil)

	admin, err := uc.Delete(ctx, "ad-1")

	require.NoError(t, err)
	assert.True(t, admin.IsDeleted)
	userRepo.AssertExpectations(t)
}
