package patients

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

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

var patientSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"email":     "email",
}

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		instance := &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
		patientPostgresRepositoryInstance = instance
	})
	return patientPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*models.Patient, error) {
	var patient models.Patient
	err := row.Scan(
		&patient.ID,
		&patient.Name,
		&patient.Email,
		&patient.Address,
		&patient.IsDeleted,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (repo *patientPostgresRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("patientPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, patient.Email),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertPatient, patient.Name, patient.Email, patient.Address)
	created, err := scanPatient(row)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.Create error executing query",
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

func (repo *patientPostgresRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return repo.findOne(ctx, "patientPostgresRepository.FindByID", queries.GetPatientByID, patientID)
}

func (repo *patientPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return repo.findOne(ctx, "patientPostgresRepository.FindByEmail", queries.GetPatientByEmail, email)
}

func (repo *patientPostgresRepository) findOne(ctx context.Context, operation, query string, args ...interface{}) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, query, args...)
	patient, err := scanPatient(row)
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
	return patient, nil
}

func (repo *patientPostgresRepository) FindAll(ctx context.Context, filters *requests.PatientFilters, pagination requests.Pagination) ([]models.Patient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("patientPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingPaginationKey, pagination),
	)

	filter := queries.NewFilter()
	filter.Add("is_deleted = false")
	if filters != nil {
		if filters.SearchTerm != "" {
			term := "%" + filters.SearchTerm + "%"
			filter.Add("(name ILIKE ? OR email ILIKE ? OR address ILIKE ?)", term, term, term)
		}
		if filters.Email != "" {
			filter.Add("email = ?", filters.Email)
		}
	}

	executor := transaction.Executor(ctx, repo.DB)

	var total int
	err := executor.QueryRowContext(ctx, queries.CountPatients+filter.Where("WHERE"), filter.Args()...).Scan(&total)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	page, args := filter.Page(pagination.Limit, pagination.Offset())
	query := queries.SelectPatients + filter.Where("WHERE") +
		queries.OrderBy(patientSortColumns, pagination.SortBy, pagination.SortOrder, "createdAt") + page

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, 0, exceptions.ErrPostgresDBScanRow(err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("patientPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, total, nil
}

func (repo *patientPostgresRepository) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	return repo.findOne(ctx, "patientPostgresRepository.Update", queries.UpdatePatientByID, patientID, request.Name, request.Address)
}

func (repo *patientPostgresRepository) SoftDelete(ctx context.Context, patientID string) (*models.Patient, error) {
	return repo.findOne(ctx, "patientPostgresRepository.SoftDelete", queries.SoftDeletePatientByID, patientID)
}
