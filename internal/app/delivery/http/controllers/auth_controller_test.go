package controllers

import (
	"bytes"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthController(env string, authUsecase *mocks.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         zap.NewNop(),
		AuthUsecase: authUsecase,
		InternalConfig: &config.InternalConfig{
			App: config.App{Env: env},
			JWT: config.JWT{AccessExpTimeInHour: 1, RefreshExpTimeInDay: 90},
		},
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthController_Login(t *testing.T) {
	body := []byte(`{"email":"patient@doccare.test","password":"secret"}`)

	t.Run("Sets Cookies And Responds 201", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("Login", mock.Anything, &requests.Login{Email: "patient@doccare.test", Password: "secret"}).
			Return(&responses.LoginResult{
				LoginUser:    responses.LoginUser{NeedPasswordChange: false, AccessToken: "access-token"},
				RefreshToken: "refresh-token",
			}, nil)
		ctrl := newAuthController("development", authUsecase)

		rr := httptest.NewRecorder()
		ctrl.Login(rr, httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var envelope struct {
			Success bool                `json:"success"`
			Message string              `json:"message"`
			Data    responses.LoginUser `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.LoginSuccessMessage, envelope.Message)
		assert.Equal(t, "access-token", envelope.Data.AccessToken)
		assert.NotContains(t, rr.Body.String(), "refresh-token")

		cookies := rr.Result().Cookies()
		access := findCookie(cookies, constvars.CookieAccessToken)
		require.NotNil(t, access)
		assert.Equal(t, "access-token", access.Value)
		assert.True(t, access.HttpOnly)
		assert.False(t, access.Secure)
		assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
		assert.Equal(t, 3600, access.MaxAge)

		refresh := findCookie(cookies, constvars.CookieRefreshToken)
		require.NotNil(t, refresh)
		assert.Equal(t, "refresh-token", refresh.Value)
		assert.Equal(t, 90*24*3600, refresh.MaxAge)
		authUsecase.AssertExpectations(t)
	})

	t.Run("Secure Cookies In Production", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("Login", mock.Anything, mock.Anything).
			Return(&responses.LoginResult{LoginUser: responses.LoginUser{AccessToken: "a"}, RefreshToken: "r"}, nil)
		ctrl := newAuthController("production", authUsecase)

		rr := httptest.NewRecorder()
		ctrl.Login(rr, httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body)))

		for _, cookie := range rr.Result().Cookies() {
			assert.True(t, cookie.Secure, cookie.Name)
		}
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		authUsecase.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidEmailOrPassword(nil))
		ctrl := newAuthController("development", authUsecase)

		rr := httptest.NewRecorder()
		ctrl.Login(rr, httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientInvalidEmailOrPassword)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("Validation Error", func(t *testing.T) {
		authUsecase := new(mocks.AuthUsecase)
		ctrl := newAuthController("development", authUsecase)

		rr := httptest.NewRecorder()
		ctrl.Login(rr, httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`))))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email"`)
		assert.Contains(t, rr.Body.String(), `"password"`)
		authUsecase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		ctrl := newAuthController("development", new(mocks.AuthUsecase))

		rr := httptest.NewRecorder()
		ctrl.Login(rr, httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte(`{`))))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientInvalidJSONBody)
	})
}
