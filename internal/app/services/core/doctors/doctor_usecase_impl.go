package doctors

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

type doctorUsecase struct {
	DoctorRepository         contracts.DoctorRepository
	DoctorScheduleRepository contracts.DoctorScheduleRepository
	UserRepository           contracts.UserRepository
	Transactor               contracts.Transactor
	Log                      *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	doctorScheduleRepository contracts.DoctorScheduleRepository,
	userRepository contracts.UserRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		instance := &doctorUsecase{
			DoctorRepository:         doctorRepository,
			DoctorScheduleRepository: doctorScheduleRepository,
			UserRepository:           userRepository,
			Transactor:               transactor,
			Log:                      logger,
		}
		doctorUsecaseInstance = instance
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.DoctorDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientDoctorNotFound, "doctor")
	}

	doctorSchedules, err := uc.DoctorScheduleRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	return &responses.DoctorDetail{Doctor: *doctor, DoctorSchedules: doctorSchedules}, nil
}

func (uc *doctorUsecase) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.Update(ctx, doctorID, request)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ErrClientDoctorNotFound, "doctor")
	}
	return doctor, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	var doctor *models.Doctor
	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		doctor, err = uc.DoctorRepository.SoftDelete(ctx, doctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return exceptions.ErrResourceNotFound(nil, constvars.ErrClientDoctorNotFound, "doctor")
		}
		return uc.UserRepository.UpdateStatusByEmail(ctx, doctor.Email, constvars.UserStatusDeleted)
	})
	if err != nil {
		uc.Log.Error("doctorUsecase.Delete error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctor, nil
}
