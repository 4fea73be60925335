package doctors

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

	"go.uber.org/zap"
)

type doctorPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	doctorPostgresRepositoryInstance contracts.DoctorRepository
	onceDoctorPostgresRepository     sync.Once
)

func NewDoctorPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DoctorRepository {
	onceDoctorPostgresRepository.Do(func() {
		instance := &doctorPostgresRepository{
			DB:  db,
			Log: logger,
		}
		doctorPostgresRepositoryInstance = instance
	})
	return doctorPostgresRepositoryInstance
}

func scanDoctor(row *sql.Row) (*models.Doctor, error) {
	var doctor models.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Email,
		&doctor.ContactNumber,
		&doctor.Address,
		&doctor.RegistrationNumber,
		&doctor.Experience,
		&doctor.Gender,
		&doctor.AppointmentFee,
		&doctor.Qualification,
		&doctor.CurrentWorkingPlace,
		&doctor.Designation,
		&doctor.ProfilePhoto,
		&doctor.AverageRating,
		&doctor.IsDeleted,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (repo *doctorPostgresRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, doctor.Email),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertDoctor,
		doctor.Name,
		doctor.Email,
		doctor.ContactNumber,
		doctor.Address,
		doctor.RegistrationNumber,
		doctor.Experience,
		doctor.Gender,
		doctor.AppointmentFee,
		doctor.Qualification,
		doctor.CurrentWorkingPlace,
		doctor.Designation,
		doctor.ProfilePhoto,
	)
	created, err := scanDoctor(row)
	if err != nil {
		repo.Log.Error("doctorPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}
	return created, nil
}

func (repo *doctorPostgresRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return repo.findOne(ctx, "doctorPostgresRepository.FindByID", queries.GetDoctorByID, doctorID)
}

func (repo *doctorPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return repo.findOne(ctx, "doctorPostgresRepository.FindByEmail", queries.GetDoctorByEmail, email)
}

func (repo *doctorPostgresRepository) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	return repo.findOne(ctx, "doctorPostgresRepository.Update", queries.UpdateDoctorByID,
		doctorID,
		request.Name,
		request.ContactNumber,
		request.Address,
		request.RegistrationNumber,
		request.Experience,
		request.Gender,
		request.AppointmentFee,
		request.Qualification,
		request.CurrentWorkingPlace,
		request.Designation,
		request.ProfilePhoto,
	)
}

func (repo *doctorPostgresRepository) SoftDelete(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return repo.findOne(ctx, "doctorPostgresRepository.SoftDelete", queries.SoftDeleteDoctorByID, doctorID)
}

func (repo *doctorPostgresRepository) findOne(ctx context.Context, operation, query string, args ...interface{}) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, query, args...)
	doctor, err := scanDoctor(row)
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
	return doctor, nil
}

// RecalculateAverageRating stores AVG(rating) over the doctor's reviews and
// returns it. A doctor without reviews gets 0.
func (repo *doctorPostgresRepository) RecalculateAverageRating(ctx context.Context, doctorID string) (float64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("doctorPostgresRepository.RecalculateAverageRating called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	var averageRating float64
	err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.RecalculateDoctorAverageRating, doctorID).Scan(&averageRating)
	if err != nil {
		repo.Log.Error("doctorPostgresRepository.RecalculateAverageRating error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBExecQuery(err)
	}
	return averageRating, nil
}
