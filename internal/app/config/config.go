package config

import (
	"doccare-service/internal/pkg/utils"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

const (
	defaultAccessSecret  = "access-secret"
	defaultRefreshSecret = "refresh-secret"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:                     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:                     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:                 utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:                 utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:                   utils.GetEnvString("POSTGRES_DB_NAME", "doccare"),
			SSLMode:                  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns:             utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:             utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeInMinutes: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTES", 30),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),

			VHost:                utils.GetEnvString("RABBITMQ_VHOST", "/"),
			ConnectionName:       utils.GetEnvString("RABBITMQ_CONNECTION_NAME", "doccare-service"),
			HeartbeatInSeconds:   utils.GetEnvInt("RABBITMQ_HEARTBEAT_IN_SECONDS", 10),
			DialTimeoutInSeconds: utils.GetEnvInt("RABBITMQ_DIAL_TIMEOUT_IN_SECONDS", 30),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			TransactionTimeoutInSeconds: utils.GetEnvInt("APP_TRANSACTION_TIMEOUT_IN_SECONDS", 15),
			ScheduleTimezone:            utils.GetEnvString("APP_SCHEDULE_TIMEZONE", "UTC"),
			SuperadminAPIKey:            utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			LoginRateLimit:              utils.GetEnvInt("APP_LOGIN_RATE_LIMIT", 5),
			LoginBlockTimeInMinutes:     utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_MINUTES", 5),
			RunMigration:                utils.GetEnvBool("APP_RUN_MIGRATION", true),
			MigrationDir:                utils.GetEnvString("APP_MIGRATION_DIR", "internal/migration"),
			SlotWorkerEnabled:           utils.GetEnvBool("APP_SLOT_WORKER_ENABLED", false),
			SlotWorkerCronSpec:          utils.GetEnvString("APP_SLOT_WORKER_CRON_SPEC", "@daily"),
			SlotWorkerDayStart:          utils.GetEnvString("APP_SLOT_WORKER_DAY_START", "09:00"),
			SlotWorkerDayEnd:            utils.GetEnvString("APP_SLOT_WORKER_DAY_END", "17:00"),
			SlotWindowDays:              utils.GetEnvInt("APP_SLOT_WINDOW_DAYS", 14),
		},
		JWT: JWT{
			AccessSecret:        utils.GetEnvString("JWT_ACCESS_SECRET", defaultAccessSecret),
			RefreshSecret:       utils.GetEnvString("JWT_REFRESH_SECRET", defaultRefreshSecret),
			AccessExpTimeInHour: utils.GetEnvInt("JWT_ACCESS_EXP_TIME_IN_HOUR", 1),
			RefreshExpTimeInDay: utils.GetEnvInt("JWT_REFRESH_EXP_TIME_IN_DAY", 90),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointment_events"),
		},
	}
}

// Validate rejects production settings that would sign tokens with an empty
// or built-in secret.
func (c *InternalConfig) Validate() error {
	if c.App.Env != "production" {
		return nil
	}

	var errs []error
	secrets := []struct {
		key, value, builtIn string
	}{
		{"JWT_ACCESS_SECRET", c.JWT.AccessSecret, defaultAccessSecret},
		{"JWT_REFRESH_SECRET", c.JWT.RefreshSecret, defaultRefreshSecret},
	}
	for _, secret := range secrets {
		if secret.value == "" || secret.value == secret.builtIn {
			errs = append(errs, fmt.Errorf("%s must be set in production", secret.key))
		}
	}
	return errors.Join(errs...)
}
