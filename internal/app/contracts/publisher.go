package contracts

import (
	"context"
	"doccare-service/internal/app/models"
)

type AppointmentEventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error
}
