package auth

import (
	"context"
	"net/http"
	"testing"

	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthUsecase(t *testing.T) (*authUsecase, *mocks.UserRepository) {
	t.Helper()
	userRepo := new(mocks.UserRepository)
	return &authUsecase{
		UserRepository: userRepo,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{
				AccessSecret:        "access-secret",
				RefreshSecret:       "refresh-secret",
				AccessExpTimeInHour: 1,
				RefreshExpTimeInDay: 90,
			},
		},
		Log: zap.NewNop(),
	}, userRepo
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)
	account := &models.User{Email: "doc@x.io", Password: hash, Role: "DOCTOR", NeedPasswordChange: true}

	t.Run("issues access and refresh tokens", func(t *testing.T) {
		uc, userRepo := newTestAuthUsecase(t)
		userRepo.On("FindActiveByEmail", ctx, "doc@x.io").Return(account, nil)

		result, err := uc.Login(ctx, &requests.Login{Email: "doc@x.io", Password: "secret"})

		require.NoError(t, err)
		assert.True(t, result.NeedPasswordChange)

		claims, err := utils.ParseJWT(result.AccessToken, "access-secret")
		require.NoError(t, err)
		assert.Equal(t, "doc@x.io", claims["email"])
		assert.Equal(t, "DOCTOR", claims["role"])

		_, err = utils.ParseJWT(result.RefreshToken, "access-secret")
		assert.Error(t, err)
		_, err = utils.ParseJWT(result.RefreshToken, "refresh-secret")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, userRepo := newTestAuthUsecase(t)
		userRepo.On("FindActiveByEmail", ctx, "doc@x.io").Return(account, nil)

		_, err := uc.Login(ctx, &requests.Login{Email: "doc@x.io", Password: "nope"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("deleted or unknown account", func(t *testing.T) {
		uc, userRepo := newTestAuthUsecase(t)
		userRepo.On("FindActiveByEmail", ctx, "gone@x.io").Return(nil, nil)

		_, err := uc.Login(ctx, &requests.Login{Email: "gone@x.io", Password: "secret"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	})
}
