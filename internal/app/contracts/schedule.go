package contracts

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"time"
)

type ScheduleRepository interface {
	// CreateIfNotExists returns nil, nil when the interval already exists.
	CreateIfNotExists(ctx context.Context, start, end time.Time) (*models.Schedule, error)
	FindNotAssignedToDoctor(ctx context.Context, doctorID string, window *ScheduleWindow, pagination requests.Pagination) ([]models.Schedule, int, error)
	DeleteByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
}

// ScheduleWindow bounds a listing to slots fully inside [Start, End].
type ScheduleWindow struct {
	Start time.Time
	End   time.Time
}

type ScheduleUsecase interface {
	CreateSchedules(ctx context.Context, request *requests.CreateSchedule) ([]models.Schedule, error)
	ListForDoctor(ctx context.Context, doctorEmail string, filters *requests.ScheduleFilters, pagination requests.Pagination) ([]models.Schedule, *responses.Meta, error)
	DeleteSchedule(ctx context.Context, scheduleID string) (*models.Schedule, error)
}
