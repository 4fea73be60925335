package doctor_schedules

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/transaction"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/queries"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type doctorSchedulePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	doctorSchedulePostgresRepositoryInstance contracts.DoctorScheduleRepository
	onceDoctorSchedulePostgresRepository     sync.Once
)

func NewDoctorSchedulePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DoctorScheduleRepository {
	onceDoctorSchedulePostgresRepository.Do(func() {
		instance := &doctorSchedulePostgresRepository{
			DB:  db,
			Log: logger,
		}
		doctorSchedulePostgresRepositoryInstance = instance
	})
	return doctorSchedulePostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoctorSchedule(row rowScanner) (*models.DoctorSchedule, error) {
	var doctorSchedule models.DoctorSchedule
	err := row.Scan(
		&doctorSchedule.DoctorID,
		&doctorSchedule.ScheduleID,
		&doctorSchedule.IsBooked,
		&doctorSchedule.CreatedAt,
		&doctorSchedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctorSchedule, nil
}

func (repo *doctorSchedulePostgresRepository) CreateIfNotExists(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorSchedulePostgresRepository.CreateIfNotExists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertDoctorScheduleIfNotExists, doctorID, scheduleID)
	doctorSchedule, err := scanDoctorSchedule(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		repo.Log.Info("doctorSchedulePostgresRepository.CreateIfNotExists pair already assigned",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		)
		return nil, nil
	case exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeForeignKeyViolation):
		repo.Log.Warn("doctorSchedulePostgresRepository.CreateIfNotExists unknown schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		)
		return nil, exceptions.ErrResourceNotFound(err, constvars.ErrClientScheduleNotFound, "schedule")
	case err != nil:
		repo.Log.Error("doctorSchedulePostgresRepository.CreateIfNotExists error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromPostgresError(err)
	}
	return doctorSchedule, nil
}

func (repo *doctorSchedulePostgresRepository) FindUnbooked(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorSchedulePostgresRepository.FindUnbooked called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetUnbookedDoctorSchedule, doctorID, scheduleID)
	doctorSchedule, err := scanDoctorSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		repo.Log.Warn("doctorSchedulePostgresRepository.FindUnbooked no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("doctorSchedulePostgresRepository.FindUnbooked error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctorSchedule, nil
}

func (repo *doctorSchedulePostgresRepository) MarkBooked(ctx context.Context, doctorID, scheduleID string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorSchedulePostgresRepository.MarkBooked called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	result, err := transaction.Executor(ctx, repo.DB).ExecContext(ctx, queries.MarkDoctorScheduleBooked, doctorID, scheduleID)
	if err != nil {
		repo.Log.Error("doctorSchedulePostgresRepository.MarkBooked error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.FromPostgresError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBExecQuery(err)
	}
	return affected == 1, nil
}

func (repo *doctorSchedulePostgresRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorSchedulePostgresRepository.FindByDoctorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	rows, err := transaction.Executor(ctx, repo.DB).QueryContext(ctx, queries.GetDoctorSchedulesByDoctorID, doctorID)
	if err != nil {
		repo.Log.Error("doctorSchedulePostgresRepository.FindByDoctorID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	doctorSchedules := make([]models.DoctorSchedule, 0)
	for rows.Next() {
		doctorSchedule, err := scanDoctorSchedule(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		doctorSchedules = append(doctorSchedules, *doctorSchedule)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctorSchedules, nil
}
