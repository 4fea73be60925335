package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
)

type DoctorScheduleRepository interface {
	// CreateIfNotExists returns nil, nil when the pair is already assigned.
	CreateIfNotExists(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error)
	FindUnbooked(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error)
	// MarkBooked reports false when the slot was booked by someone else first.
	MarkBooked(ctx context.Context, doctorID, scheduleID string) (bool, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error)
}

type DoctorScheduleUsecase interface {
	AssignSchedules(ctx context.Context, doctorEmail string, request *requests.AssignDoctorSchedules) (*responses.AssignDoctorSchedules, error)
}
