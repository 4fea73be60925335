package doctor_schedules

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type doctorScheduleUsecase struct {
	DoctorScheduleRepository contracts.DoctorScheduleRepository
	DoctorRepository         contracts.DoctorRepository
	Transactor               contracts.Transactor
	Log                      *zap.Logger
}

var (
	doctorScheduleUsecaseInstance contracts.DoctorScheduleUsecase
	onceDoctorScheduleUsecase     sync.Once
)

func NewDoctorScheduleUsecase(
	doctorScheduleRepository contracts.DoctorScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.DoctorScheduleUsecase {
	onceDoctorScheduleUsecase.Do(func() {
		instance := &doctorScheduleUsecase{
			DoctorScheduleRepository: doctorScheduleRepository,
			DoctorRepository:         doctorRepository,
			Transactor:               transactor,
			Log:                      logger,
		}
		doctorScheduleUsecaseInstance = instance
	})
	return doctorScheduleUsecaseInstance
}

// AssignSchedules links the requested slots to the calling doctor. Pairs
// that already exist are skipped; an unknown slot rolls back the request.
func (uc *doctorScheduleUsecase) AssignSchedules(ctx context.Context, doctorEmail string, request *requests.AssignDoctorSchedules) (*responses.AssignDoctorSchedules, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorScheduleUsecase.AssignSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, doctorEmail),
		zap.Int(constvars.LoggingCountKey, len(request.ScheduleIDs)),
	)

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, doctorEmail)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientDoctorNotFound, "doctor")
	}

	scheduleIDs := uniqueStrings(request.ScheduleIDs)
	inserted := make([]models.DoctorSchedule, 0, len(scheduleIDs))

	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, scheduleID := range scheduleIDs {
			doctorSchedule, err := uc.DoctorScheduleRepository.CreateIfNotExists(ctx, doctor.ID, scheduleID)
			if err != nil {
				return err
			}
			if doctorSchedule != nil {
				inserted = append(inserted, *doctorSchedule)
			}
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("doctorScheduleUsecase.AssignSchedules error assigning schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorScheduleUsecase.AssignSchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.Int(constvars.LoggingCountKey, len(inserted)),
	)
	return &responses.AssignDoctorSchedules{
		Count:           len(inserted),
		DoctorSchedules: inserted,
	}, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
