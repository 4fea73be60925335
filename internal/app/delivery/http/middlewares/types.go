package middlewares

import (
	"doccare-service/internal/app/config"
	"sync"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

var (
	middlewaresInstance *Middlewares
	onceMiddlewares     sync.Once
)

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	onceMiddlewares.Do(func() {
		middlewaresInstance = &Middlewares{
			Log:            logger,
			InternalConfig: internalConfig,
		}
	})
	return middlewaresInstance
}
