package schedules

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/transaction"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/queries"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var scheduleSortColumns = map[string]string{
	"id":            "id",
	"startDateTime": "start_date_time",
	"endDateTime":   "end_date_time",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

type schedulePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	schedulePostgresRepositoryInstance contracts.ScheduleRepository
	onceSchedulePostgresRepository     sync.Once
)

func NewSchedulePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ScheduleRepository {
	onceSchedulePostgresRepository.Do(func() {
		instance := &schedulePostgresRepository{
			DB:  db,
			Log: logger,
		}
		schedulePostgresRepositoryInstance = instance
	})
	return schedulePostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*models.Schedule, error) {
	var schedule models.Schedule
	err := row.Scan(
		&schedule.ID,
		&schedule.StartDateTime,
		&schedule.EndDateTime,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	schedule.StartDateTime = schedule.StartDateTime.UTC()
	schedule.EndDateTime = schedule.EndDateTime.UTC()
	return &schedule, nil
}

func (repo *schedulePostgresRepository) CreateIfNotExists(ctx context.Context, start, end time.Time) (*models.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Debug("schedulePostgresRepository.CreateIfNotExists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time("start_date_time", start),
		zap.Time("end_date_time", end),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertScheduleIfNotExists, start, end)
	schedule, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		repo.Log.Debug("schedulePostgresRepository.CreateIfNotExists interval already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time("start_date_time", start),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("schedulePostgresRepository.CreateIfNotExists error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}
	return schedule, nil
}

func (repo *schedulePostgresRepository) FindNotAssignedToDoctor(ctx context.Context, doctorID string, window *contracts.ScheduleWindow, pagination requests.Pagination) ([]models.Schedule, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("schedulePostgresRepository.FindNotAssignedToDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Any(constvars.LoggingPaginationKey, pagination),
	)

	filter := queries.NewFilter(doctorID)
	if window != nil {
		filter.Add("s.start_date_time >= ?", window.Start)
		filter.Add("s.end_date_time <= ?", window.End)
	}

	db := transaction.Executor(ctx, repo.DB)

	var total int
	err := db.QueryRowContext(ctx, queries.CountSchedulesNotAssignedToDoctor+filter.Where("AND"), filter.Args()...).Scan(&total)
	if err != nil {
		repo.Log.Error("schedulePostgresRepository.FindNotAssignedToDoctor error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	pageClause, args := filter.Page(pagination.Limit, pagination.Offset())
	query := queries.SelectSchedulesNotAssignedToDoctor +
		filter.Where("AND") +
		queries.OrderBy(scheduleSortColumns, pagination.SortBy, pagination.SortOrder, "startDateTime") +
		pageClause

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error("schedulePostgresRepository.FindNotAssignedToDoctor error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	schedules := make([]models.Schedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			repo.Log.Error("schedulePostgresRepository.FindNotAssignedToDoctor error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrPostgresDBScanRow(err)
		}
		schedules = append(schedules, *schedule)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("schedulePostgresRepository.FindNotAssignedToDoctor rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("schedulePostgresRepository.FindNotAssignedToDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(schedules)),
	)
	return schedules, total, nil
}

// DeleteByID returns nil, nil for unknown or malformed ids.
func (repo *schedulePostgresRepository) DeleteByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("schedulePostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.DeleteScheduleByID, scheduleID)
	schedule, err := scanSchedule(row)
	switch {
	case errors.Is(err, sql.ErrNoRows), exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeInvalidTextRepr):
		repo.Log.Warn("schedulePostgresRepository.DeleteByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		)
		return nil, nil
	case exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeForeignKeyViolation):
		repo.Log.Warn("schedulePostgresRepository.DeleteByID schedule still referenced",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		)
		return nil, exceptions.ErrScheduleInUse(err)
	case err != nil:
		repo.Log.Error("schedulePostgresRepository.DeleteByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}

	repo.Log.Info("schedulePostgresRepository.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
	)
	return schedule, nil
}
