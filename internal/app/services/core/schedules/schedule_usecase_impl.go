package schedules

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	DoctorRepository   contracts.DoctorRepository
	Transactor         contracts.Transactor
	Metrics            contracts.DomainMetrics
	Location           *time.Location
	Log                *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	transactor contracts.Transactor,
	metrics contracts.DomainMetrics,
	location *time.Location,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		if location == nil {
			location = time.UTC
		}
		instance := &scheduleUsecase{
			ScheduleRepository: scheduleRepository,
			DoctorRepository:   doctorRepository,
			Transactor:         transactor,
			Metrics:            metrics,
			Location:           location,
			Log:                logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

// CreateSchedules inserts every missing slot of the requested range in one
// transaction and returns only the rows it created.
func (uc *scheduleUsecase) CreateSchedules(ctx context.Context, request *requests.CreateSchedule) ([]models.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	intervals, err := uc.expandRequest(request)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedules error parsing request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	created := make([]models.Schedule, 0, len(intervals))
	if len(intervals) == 0 {
		return created, nil
	}

	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, iv := range intervals {
			schedule, err := uc.ScheduleRepository.CreateIfNotExists(ctx, iv.Start, iv.End)
			if err != nil {
				return err
			}
			if schedule != nil {
				created = append(created, *schedule)
			}
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedules error creating schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.AddGeneratedSlots(len(created))
	}

	uc.Log.Info("scheduleUsecase.CreateSchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("candidate_count", len(intervals)),
		zap.Int(constvars.LoggingCountKey, len(created)),
	)
	return created, nil
}

func (uc *scheduleUsecase) expandRequest(request *requests.CreateSchedule) ([]interval, error) {
	startDate, err := utils.ParseDate(request.StartDate, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	endDate, err := utils.ParseDate(request.EndDate, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	startHour, startMinute, err := utils.ParseClock(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	endHour, endMinute, err := utils.ParseClock(request.EndTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	from := clock{H: startHour, M: startMinute}
	to := clock{H: endHour, M: endMinute}
	return buildSlotIntervals(startDate, endDate, from, to, uc.Location), nil
}

func (uc *scheduleUsecase) ListForDoctor(ctx context.Context, doctorEmail string, filters *requests.ScheduleFilters, pagination requests.Pagination) ([]models.Schedule, *responses.Meta, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ListForDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, doctorEmail),
	)

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, doctorEmail)
	if err != nil {
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientDoctorNotFound, "doctor")
	}

	var window *contracts.ScheduleWindow
	if filters != nil && filters.StartDateTime != "" && filters.EndDateTime != "" {
		start, err := utils.ParseDateTime(filters.StartDateTime)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseDate(err)
		}
		end, err := utils.ParseDateTime(filters.EndDateTime)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseDate(err)
		}
		window = &contracts.ScheduleWindow{Start: start, End: end}
	}

	schedules, total, err := uc.ScheduleRepository.FindNotAssignedToDoctor(ctx, doctor.ID, window, pagination)
	if err != nil {
		uc.Log.Error("scheduleUsecase.ListForDoctor error fetching schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	meta := &responses.Meta{
		Page:  pagination.Page,
		Limit: pagination.Limit,
		Total: total,
	}
	return schedules, meta, nil
}

func (uc *scheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeleteSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := uc.ScheduleRepository.DeleteByID(ctx, scheduleID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.DeleteSchedule error deleting schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientScheduleNotFound, "schedule")
	}
	return schedule, nil
}
