package prescriptions

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/transaction"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/queries"
	"sync"
	"time"

	"go.uber.org/zap"
)

type prescriptionPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	prescriptionPostgresRepositoryInstance contracts.PrescriptionRepository
	oncePrescriptionPostgresRepository     sync.Once
)

func NewPrescriptionPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PrescriptionRepository {
	oncePrescriptionPostgresRepository.Do(func() {
		instance := &prescriptionPostgresRepository{
			DB:  db,
			Log: logger,
		}
		prescriptionPostgresRepositoryInstance = instance
	})
	return prescriptionPostgresRepositoryInstance
}

func (repo *prescriptionPostgresRepository) Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("prescriptionPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, prescription.AppointmentID),
	)

	var (
		created      models.Prescription
		followUpDate sql.NullTime
	)
	err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertPrescription,
		prescription.AppointmentID,
		prescription.DoctorID,
		prescription.PatientID,
		prescription.Instructions,
		prescription.FollowUpDate,
	).Scan(
		&created.ID,
		&created.AppointmentID,
		&created.DoctorID,
		&created.PatientID,
		&created.Instructions,
		&followUpDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation) {
			return nil, exceptions.ErrResourceConflict(err, constvars.ErrClientPrescriptionAlreadyExists)
		}
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}

	if followUpDate.Valid {
		value := followUpDate.Time.In(time.UTC)
		created.FollowUpDate = &value
	}
	return &created, nil
}
