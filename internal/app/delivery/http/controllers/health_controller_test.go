package controllers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthController_CheckHealth(t *testing.T) {
	ctrl := &HealthController{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{App: config.App{Env: "test"}},
		StartedAt:      time.Now().Add(-time.Minute),
	}

	rr := httptest.NewRecorder()
	ctrl.CheckHealth(rr, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ServerRunningSuccessMessage)
	assert.Contains(t, rr.Body.String(), `"environment":"test"`)
}
