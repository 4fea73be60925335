package appointments

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

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	appointmentPostgresRepositoryInstance contracts.AppointmentRepository
	onceAppointmentPostgresRepository     sync.Once
)

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	onceAppointmentPostgresRepository.Do(func() {
		instance := &appointmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		appointmentPostgresRepositoryInstance = instance
	})
	return appointmentPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func appointmentFields(appointment *models.Appointment) []interface{} {
	return []interface{}{
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.ScheduleID,
		&appointment.VideoCallingID,
		&appointment.Status,
		&appointment.PaymentStatus,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	}
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := row.Scan(appointmentFields(&appointment)...); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func scanAppointmentWithDoctor(row rowScanner) (*models.AppointmentWithDoctor, error) {
	var result models.AppointmentWithDoctor
	dest := append(appointmentFields(&result.Appointment), &result.DoctorEmail)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &result, nil
}

func (repo *appointmentPostgresRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("appointmentPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
		zap.String(constvars.LoggingScheduleIDKey, appointment.ScheduleID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertAppointment,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.ScheduleID,
		appointment.VideoCallingID,
	)
	created, err := scanAppointment(row)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation) {
			return nil, exceptions.ErrScheduleAlreadyBooked(err)
		}
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}

	repo.Log.Info("appointmentPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, created.ID),
	)
	return created, nil
}

func (repo *appointmentPostgresRepository) FindWithDoctorByID(ctx context.Context, appointmentID string) (*models.AppointmentWithDoctor, error) {
	return repo.findWithDoctor(ctx, "appointmentPostgresRepository.FindWithDoctorByID", queries.GetAppointmentWithDoctorEmailByID, appointmentID)
}

func (repo *appointmentPostgresRepository) FindCompletedPaidWithDoctorByID(ctx context.Context, appointmentID string) (*models.AppointmentWithDoctor, error) {
	return repo.findWithDoctor(ctx, "appointmentPostgresRepository.FindCompletedPaidWithDoctorByID", queries.GetCompletedPaidAppointmentWithDoctorEmailByID, appointmentID)
}

func (repo *appointmentPostgresRepository) findWithDoctor(ctx context.Context, operation, query, appointmentID string) (*models.AppointmentWithDoctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, query, appointmentID)
	appointment, err := scanAppointmentWithDoctor(row)
	if errors.Is(err, sql.ErrNoRows) || exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeInvalidTextRepr) {
		repo.Log.Warn(operation+" no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error(operation+" error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (repo *appointmentPostgresRepository) UpdateStatusFrom(ctx context.Context, appointmentID, from, to string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("appointmentPostgresRepository.UpdateStatusFrom called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.String("from", from),
		zap.String("to", to),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.UpdateAppointmentStatusFrom, appointmentID, from, to)
	appointment, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("appointmentPostgresRepository.UpdateStatusFrom error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromPostgresError(err)
	}
	return appointment, nil
}

func (repo *appointmentPostgresRepository) MarkPaid(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("appointmentPostgresRepository.MarkPaid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.MarkAppointmentPaid, appointmentID)
	appointment, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("appointmentPostgresRepository.MarkPaid error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromPostgresError(err)
	}
	return appointment, nil
}
