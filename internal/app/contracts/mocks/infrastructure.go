package mocks

import (
	"context"
	"doccare-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly once the expectation returns nil, so the
// repositories called inside see the same ctx.
type Transactor struct {
	mock.Mock
}

func (m *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type AppointmentEventPublisher struct {
	mock.Mock
}

func (m *AppointmentEventPublisher) PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type DomainMetrics struct {
	mock.Mock
}

func (m *DomainMetrics) ObserveBooking(result string) {
	m.Called(result)
}

func (m *DomainMetrics) AddGeneratedSlots(count int) {
	m.Called(count)
}
