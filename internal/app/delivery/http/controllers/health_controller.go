package controllers

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	StartedAt      time.Time
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig) *HealthController {
	onceHealthController.Do(func() {
		healthControllerInstance = &HealthController{
			Log:            logger,
			InternalConfig: internalConfig,
			StartedAt:      time.Now(),
		}
	})
	return healthControllerInstance
}

func (ctrl *HealthController) CheckHealth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	response := responses.Health{
		Environment: ctrl.InternalConfig.App.Env,
		Uptime:      now.Sub(ctrl.StartedAt).Seconds(),
		Timestamp:   now.UTC(),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServerRunningSuccessMessage, response)
}
