package users

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

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		instance := &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
		userPostgresRepositoryInstance = instance
	})
	return userPostgresRepositoryInstance
}

func (repo *userPostgresRepository) CreateUser(ctx context.Context, account *requests.NewAccount) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("userPostgresRepository.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, account.Email),
		zap.String(constvars.LoggingRoleKey, account.Role),
	)

	var user models.User
	err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertUser,
		account.Email,
		account.HashedPassword,
		account.Role,
		account.NeedPasswordChange,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.NeedPasswordChange,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		repo.Log.Error("userPostgresRepository.CreateUser error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}

	repo.Log.Info("userPostgresRepository.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIDKey, user.ID),
	)
	return &user, nil
}

func (repo *userPostgresRepository) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("userPostgresRepository.FindActiveByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	var user models.User
	err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetActiveUserByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Status,
		&user.NeedPasswordChange,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		repo.Log.Warn("userPostgresRepository.FindActiveByEmail no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("userPostgresRepository.FindActiveByEmail error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}

func (repo *userPostgresRepository) UpdateStatusByEmail(ctx context.Context, email, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("userPostgresRepository.UpdateStatusByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
		zap.String("status", status),
	)

	_, err := transaction.Executor(ctx, repo.DB).ExecContext(ctx, queries.UpdateUserStatusByEmail, status, email)
	if err != nil {
		repo.Log.Error("userPostgresRepository.UpdateStatusByEmail error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.FromPostgresError(err)
	}
	return nil
}
