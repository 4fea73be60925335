package logger

import (
	"doccare-service/internal/app/config"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	zapLogger, err := buildZapConfig(driverConfig, internalConfig).Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger.With(zap.String("env", internalConfig.App.Env))
}

func buildZapConfig(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) zap.Config {
	level, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	// production keeps application logs on disk and mirrors errors to stderr
	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if internalConfig.App.Env == "production" {
		outputPaths = []string{driverConfig.Logger.OutputFileName}
		errorOutputPaths = append(errorOutputPaths, driverConfig.Logger.OutputErrorFileName)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      internalConfig.App.Env == "development",
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}
}
