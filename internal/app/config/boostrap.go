package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	PostgresDB     *sql.DB
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SlotWorkerStop if set will be called during Shutdown to stop the slot cron
	SlotWorkerStop func()
}

// Shutdown releases every resource even when an earlier close fails and
// returns the joined errors.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SlotWorkerStop != nil {
		b.SlotWorkerStop()
		b.Logger.Info("Slot worker stopped")
	}

	closers := []struct {
		name  string
		close func() error
	}{
		{"postgres", b.PostgresDB.Close},
		{"redis", b.Redis.Close},
		{"rabbitmq", b.RabbitMQ.Close},
	}

	var errs []error
	for _, c := range closers {
		if ctx.Err() != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", c.name, ctx.Err()))
			continue
		}
		if err := c.close(); err != nil {
			b.Logger.Error("Failed to close resource", zap.String("resource", c.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("closing %s: %w", c.name, err))
			continue
		}
		b.Logger.Info("Resource closed", zap.String("resource", c.name))
	}

	// stdout and stderr report EINVAL on sync
	_ = b.Logger.Sync()

	return errors.Join(errs...)
}
