package middlewares

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testAPIKey = "test-superadmin-api-key-12345"

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				SuperadminAPIKey: testAPIKey,
			},
			JWT: config.JWT{
				AccessSecret:  "test-access-secret",
				RefreshSecret: "test-refresh-secret",
			},
		},
	}
}

func TestAPIKeyAuth(t *testing.T) {
	middlewares := newTestMiddlewares()

	var apiKeyAuth, flagged bool
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, flagged = r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("No API Key - Should Pass", func(t *testing.T) {
		apiKeyAuth, flagged = false, false
		req := httptest.NewRequest("POST", "/api/v1/user/create-admin", nil)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK when no API key provided")
		assert.Equal(t, "success", rr.Body.String())
		assert.False(t, flagged, "context should not be marked without a key")
	})

	t.Run("Valid API Key - Should Pass", func(t *testing.T) {
		apiKeyAuth, flagged = false, false
		req := httptest.NewRequest("POST", "/api/v1/user/create-admin", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.True(t, flagged, "CONTEXT_API_KEY_AUTH should be set")
		assert.True(t, apiKeyAuth, "CONTEXT_API_KEY_AUTH should be true")
	})

	t.Run("Invalid API Key - Should Fail", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/user/create-admin", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/user/create-admin", nil)
		req.Header.Set(constvars.HeaderAPIKey, "TEST-SUPERADMIN-API-KEY-12345")

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for case-mismatched API key")
	})

	t.Run("Unconfigured Key Rejects Everything", func(t *testing.T) {
		unconfigured := newTestMiddlewares()
		unconfigured.InternalConfig.App.SuperadminAPIKey = ""

		req := httptest.NewRequest("POST", "/api/v1/user/create-admin", nil)
		req.Header.Set(constvars.HeaderAPIKey, "anything")

		rr := httptest.NewRecorder()
		unconfigured.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
