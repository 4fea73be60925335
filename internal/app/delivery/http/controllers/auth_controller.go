package controllers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:            logger,
			AuthUsecase:    authUsecase,
			InternalConfig: internalConfig,
		}
	})
	return authControllerInstance
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Login)
	if err := decodeAndValidate(r, request); err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Invalid login request", err)
		return
	}

	result, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, requestID, "Failed to login", err)
		return
	}

	accessMaxAge := time.Duration(ctrl.InternalConfig.JWT.AccessExpTimeInHour) * time.Hour
	refreshMaxAge := time.Duration(ctrl.InternalConfig.JWT.RefreshExpTimeInDay) * 24 * time.Hour
	http.SetCookie(w, ctrl.tokenCookie(constvars.CookieAccessToken, result.AccessToken, accessMaxAge))
	http.SetCookie(w, ctrl.tokenCookie(constvars.CookieRefreshToken, result.RefreshToken, refreshMaxAge))

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LoginSuccessMessage, result.LoginUser)
}

func (ctrl *AuthController) tokenCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.Env == "production",
		SameSite: http.SameSiteStrictMode,
	}
}
