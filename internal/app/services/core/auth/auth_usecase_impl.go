package auth

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

// Login checks the password of an ACTIVE account and issues an access token
// carrying {email, role} plus a refresh token signed with its own secret.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindActiveByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Warn("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	claims := map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	}
	jwtConfig := uc.InternalConfig.JWT

	accessToken, err := utils.GenerateJWT(claims, jwtConfig.AccessSecret, time.Duration(jwtConfig.AccessExpTimeInHour)*time.Hour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	refreshToken, err := utils.GenerateJWT(claims, jwtConfig.RefreshSecret, time.Duration(jwtConfig.RefreshExpTimeInDay)*24*time.Hour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating refresh token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &responses.LoginResult{
		LoginUser: responses.LoginUser{
			NeedPasswordChange: user.NeedPasswordChange,
			AccessToken:        accessToken,
		},
		RefreshToken: refreshToken,
	}, nil
}
