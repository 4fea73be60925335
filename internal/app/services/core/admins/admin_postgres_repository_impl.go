package admins

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

type adminPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	adminPostgresRepositoryInstance contracts.AdminRepository
	onceAdminPostgresRepository     sync.Once
)

var adminSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"email":     "email",
}

func NewAdminPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AdminRepository {
	onceAdminPostgresRepository.Do(func() {
		instance := &adminPostgresRepository{
			DB:  db,
			Log: logger,
		}
		adminPostgresRepositoryInstance = instance
	})
	return adminPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAdmin(row rowScanner) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.ContactNumber,
		&admin.ProfilePhoto,
		&admin.IsDeleted,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (repo *adminPostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("adminPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, admin.Email),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertAdmin,
		admin.Name,
		admin.Email,
		admin.ContactNumber,
		admin.ProfilePhoto,
	)
	created, err := scanAdmin(row)
	if err != nil {
		repo.Log.Error("adminPostgresRepository.Create error executing query",
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

func (repo *adminPostgresRepository) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	return repo.findOne(ctx, "adminPostgresRepository.FindByID", queries.GetAdminByID, adminID)
}

func (repo *adminPostgresRepository) findOne(ctx context.Context, operation, query string, args ...interface{}) (*models.Admin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, query, args...)
	admin, err := scanAdmin(row)
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
	return admin, nil
}

func (repo *adminPostgresRepository) FindAll(ctx context.Context, filters *requests.AdminFilters, pagination requests.Pagination) ([]models.Admin, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("adminPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingPaginationKey, pagination),
	)

	filter := queries.NewFilter()
	filter.Add("is_deleted = false")
	if filters != nil {
		if filters.SearchTerm != "" {
			term := "%" + filters.SearchTerm + "%"
			filter.Add("(name ILIKE ? OR email ILIKE ? OR contact_number ILIKE ?)", term, term, term)
		}
		if filters.Email != "" {
			filter.Add("email = ?", filters.Email)
		}
		if filters.ContactNumber != "" {
			filter.Add("contact_number = ?", filters.ContactNumber)
		}
	}

	executor := transaction.Executor(ctx, repo.DB)

	var total int
	err := executor.QueryRowContext(ctx, queries.CountAdmins+filter.Where("WHERE"), filter.Args()...).Scan(&total)
	if err != nil {
		repo.Log.Error("adminPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	page, args := filter.Page(pagination.Limit, pagination.Offset())
	query := queries.SelectAdmins + filter.Where("WHERE") +
		queries.OrderBy(adminSortColumns, pagination.SortBy, pagination.SortOrder, "createdAt") + page

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error("adminPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	admins := make([]models.Admin, 0)
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, 0, exceptions.ErrPostgresDBScanRow(err)
		}
		admins = append(admins, *admin)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	return admins, total, nil
}

func (repo *adminPostgresRepository) Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error) {
	return repo.findOne(ctx, "adminPostgresRepository.Update", queries.UpdateAdminByID, adminID, request.Name, request.ContactNumber)
}

func (repo *adminPostgresRepository) SoftDelete(ctx context.Context, adminID string) (*models.Admin, error) {
	return repo.findOne(ctx, "adminPostgresRepository.SoftDelete", queries.SoftDeleteAdminByID, adminID)
}
