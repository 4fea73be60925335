package logger

import (
	"doccare-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildZapConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{
		Logger: config.Logger{
			Level:               "warn",
			OutputFileName:      "app.log",
			OutputErrorFileName: "app_error.log",
		},
	}

	t.Run("development writes to stdout", func(t *testing.T) {
		cfg := buildZapConfig(driverConfig, &config.InternalConfig{App: config.App{Env: "development"}})
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
		assert.True(t, cfg.Development)
		assert.Equal(t, zap.WarnLevel, cfg.Level.Level())
	})

	t.Run("production writes to files", func(t *testing.T) {
		cfg := buildZapConfig(driverConfig, &config.InternalConfig{App: config.App{Env: "production"}})
		assert.Equal(t, []string{"app.log"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr", "app_error.log"}, cfg.ErrorOutputPaths)
		assert.False(t, cfg.Development)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := buildZapConfig(&config.DriverConfig{Logger: config.Logger{Level: "verbose"}}, &config.InternalConfig{})
		assert.Equal(t, zap.InfoLevel, cfg.Level.Level())
	})
}
